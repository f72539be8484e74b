// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navwar/gotransfer/pkg/cli"
	"github.com/navwar/gotransfer/pkg/fs"
	"github.com/navwar/gotransfer/pkg/lfs"
)

func main() {
	rootCommand := &cobra.Command{
		Use:                   `gomove SOURCE DESTINATION [flags]`,
		DisableFlagsInUseLine: true,
		Short:                 "gomove moves a file or directory while reporting progress.",
		Long: strings.Join([]string{
			"gomove moves a file or directory while reporting progress.",
			"Every file is copied with its modification time and permissions, and then removed from the source.",
			"If the destination is an existing directory and the source is a file, then the file is moved into the directory.",
		}, "\n"),
		Version:       cli.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()

			v, err := cli.InitViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := cli.CheckMoveConfig(v, args); errConfig != nil {
				return errConfig
			}

			logger, err := cli.InitLogger(v)
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}

			source, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("error creating absolute path for source: %q", args[0])
			}

			destination, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("error creating absolute path for destination: %q", args[1])
			}

			sink, finish := cli.InitSink(v, "Moving", os.Stderr, logger)

			fileSystem := lfs.NewLocalFileSystem("")

			output, err := fs.Move(ctx, &fs.MoveInput{
				CheckFreeSpace:        v.GetBool(cli.FlagCheckFreeSpace),
				ChunkSize:             v.GetInt(cli.FlagChunkSize),
				Source:                source,
				SourceFileSystem:      fileSystem,
				Destination:           destination,
				DestinationFileSystem: fileSystem,
				Logger:                cli.FileLogger(v, logger),
				Sink:                  sink,
				Verify:                v.GetBool(cli.FlagVerify),
			})

			finish()

			if err != nil {
				_ = logger.Log("Error moving", map[string]interface{}{
					"src": source,
					"dst": destination,
					"err": err.Error(),
				})
				os.Exit(1)
			}

			fields := output.Fields()
			fields["src"] = source
			fields["dst"] = destination
			fields["size"] = cli.FormatFileSize(output.Bytes)
			_ = logger.Log("Done", fields)

			return nil
		},
	}
	cli.InitMoveCommandFlags(rootCommand.Flags())

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gomove: "+err.Error())
		fmt.Fprintln(os.Stderr, "Try \"gomove --help\" for more information.")
		os.Exit(1)
	}
}

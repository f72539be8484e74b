// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navwar/gotransfer/pkg/cli"
	"github.com/navwar/gotransfer/pkg/fs"
	"github.com/navwar/gotransfer/pkg/lfs"
	"github.com/navwar/gotransfer/pkg/remote"
	"github.com/navwar/gotransfer/pkg/s3fs"
)

func main() {
	rootCommand := &cobra.Command{
		Use:                   `gocopy DESTINATION SOURCE [flags]`,
		DisableFlagsInUseLine: true,
		Short:                 "gocopy copies a file or directory, or downloads a url, while reporting progress.",
		Long: strings.Join([]string{
			"gocopy copies a file or directory, or downloads a url, while reporting progress.",
			"Local files are specified using a path.",
			"Remote files are specified using the \"http://\", \"https://\", or \"s3://\" schemes.",
			"If the destination is an existing directory and the source is a file or url, then the file is copied into the directory.",
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

			if errConfig := cli.CheckCopyConfig(v, args); errConfig != nil {
				return errConfig
			}

			logger, err := cli.InitLogger(v)
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}

			destination, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("error creating absolute path for destination: %q", args[0])
			}

			source := args[1]
			if !remote.IsURL(source) {
				source, err = filepath.Abs(source)
				if err != nil {
					return fmt.Errorf("error creating absolute path for source: %q", args[1])
				}
			}

			threads := cli.Threads(v)

			if v.GetBool(cli.FlagDebug) {
				_ = logger.Log("Configuration", map[string]interface{}{
					"src":              source,
					"dst":              destination,
					"threads":          threads,
					"mirror":           v.GetBool(cli.FlagMirror),
					"verify":           v.GetBool(cli.FlagVerify),
					"chunk_size":       v.GetInt(cli.FlagChunkSize),
					"check_free_space": v.GetBool(cli.FlagCheckFreeSpace),
				})
			}

			sink, finish := cli.InitSink(v, "Downloading", os.Stderr, logger)

			destinationFileSystem := lfs.NewLocalFileSystem("")

			var output *fs.TransferOutput
			var transferError error
			if remote.IsURL(source) {
				var s3Client s3fs.GetObjectAPI
				if strings.HasPrefix(strings.ToLower(source), s3fs.Scheme) {
					s3Client = cli.InitS3Client(ctx, v, logger)
				}
				output, transferError = remote.Fetch(ctx, &remote.FetchInput{
					CheckFreeSpace:        v.GetBool(cli.FlagCheckFreeSpace),
					ChunkSize:             v.GetInt(cli.FlagChunkSize),
					Source:                source,
					Destination:           destination,
					DestinationFileSystem: destinationFileSystem,
					HTTPClient:            http.DefaultClient,
					S3Client:              s3Client,
					Logger:                cli.FileLogger(v, logger),
					Sink:                  sink,
					UserAgent:             v.GetString(cli.FlagUserAgent),
				})
			} else {
				output, transferError = fs.Transfer(ctx, &fs.TransferInput{
					CheckFreeSpace:        v.GetBool(cli.FlagCheckFreeSpace),
					ChunkSize:             v.GetInt(cli.FlagChunkSize),
					Source:                source,
					SourceFileSystem:      lfs.NewReadOnlyLocalFileSystem(""),
					Destination:           destination,
					DestinationFileSystem: destinationFileSystem,
					Logger:                cli.FileLogger(v, logger),
					MaxThreads:            threads,
					Mirror:                v.GetBool(cli.FlagMirror),
					Sink:                  sink,
					Verify:                v.GetBool(cli.FlagVerify),
				})
			}

			finish()

			if transferError != nil {
				_ = logger.Log("Error copying", map[string]interface{}{
					"src": source,
					"dst": destination,
					"err": transferError.Error(),
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
	cli.InitCopyCommandFlags(rootCommand.Flags())

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gocopy: "+err.Error())
		fmt.Fprintln(os.Stderr, "Try \"gocopy --help\" for more information.")
		os.Exit(1)
	}
}

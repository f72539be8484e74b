// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/navwar/gotransfer/pkg/fs"
	"github.com/navwar/gotransfer/pkg/ts"
)

const (
	Version = "0.0.1"
)

// AWS Flags
const (
	// Profile
	FlagAWSProfile = "aws-profile"
	FlagAWSRegion  = "aws-region"
	// Credentials
	FlagAWSAccessKeyID     = "aws-access-key-id"
	FlagAWSSecretAccessKey = "aws-secret-access-key"
	FlagAWSSessionToken    = "aws-session-token"
	// Client
	FlagAWSRetryMaxAttempts   = "aws-retry-max-attempts"
	FlagAWSInsecureSkipVerify = "aws-insecure-skip-verify"
	FlagAWSS3Endpoint         = "aws-s3-endpoint"
	FlagAWSS3UsePathStyle     = "aws-s3-use-path-style"
)

// AWS Defaults
const (
	DefaultAWSProfile          = "default"
	DefaultAWSRegion           = "us-east-1"
	DefaultAWSRetryMaxAttempts = 5
)

// Debug Flag
const (
	FlagDebug = "debug"
)

// Copy Flags
const (
	FlagMirror    = "mirror"
	FlagThreads   = "threads"
	FlagUserAgent = "user-agent"
)

// Transfer Flags
const (
	FlagChunkSize        = "chunk-size"
	FlagVerify           = "verify"
	FlagNoProgress       = "no-progress"
	FlagProgressInterval = "progress-interval"
	FlagCheckFreeSpace   = "check-free-space"
)

// Transfer Defaults
const (
	DefaultThreads          = 1
	DefaultProgressInterval = 5 * time.Second
)

// Log Flags
const (
	FlagLogPath            = "log-path"
	FlagLogPerm            = "log-perm"
	FlagLogTimeLayout      = "log-time-layout"
	FlagLogTimeZone        = "log-time-zone"
	FlagLogClientSigning   = "log-client-signing"
	FlagLogClientRequests  = "log-client-requests"
	FlagLogClientResponses = "log-client-responses"
	FlagLogClientRetries   = "log-client-retries"
)

// InitAWSFlags initializes the AWS flags used when fetching s3:// sources.
func InitAWSFlags(flag *pflag.FlagSet) {
	// Profile
	flag.String(FlagAWSProfile, DefaultAWSProfile, "AWS Profile")
	flag.String(FlagAWSRegion, DefaultAWSRegion, "AWS Region")
	// Credentials
	flag.String(FlagAWSAccessKeyID, "", "AWS Access Key ID")
	flag.String(FlagAWSSecretAccessKey, "", "AWS Secret Access Key")
	flag.String(FlagAWSSessionToken, "", "AWS Session Token")
	// Client
	flag.Int(FlagAWSRetryMaxAttempts, DefaultAWSRetryMaxAttempts, "the maximum number attempts an AWS API client will call an operation that fails with a retryable error.")
	// TLS
	flag.Bool(FlagAWSInsecureSkipVerify, false, "Skip verification of AWS TLS certificate")
	// Misceallenous
	flag.String(FlagAWSS3Endpoint, "", "AWS S3 Endpoint URL")
	flag.Bool(FlagAWSS3UsePathStyle, false, "Use path-style addressing (default is to use virtual-host-style addressing)")
}

func InitDebugFlags(flag *pflag.FlagSet) {
	flag.BoolP(FlagDebug, "d", false, "print debug messages, including a record for every file copied")
}

func InitCopyFlags(flag *pflag.FlagSet) {
	flag.Bool(FlagMirror, false, "preserve modification times and permissions of files and directories")
	flag.IntP(FlagThreads, "t", DefaultThreads, "number of files copied in parallel when the source is a directory.  Use -1 for the number of logical CPUs.")
	flag.String(FlagUserAgent, "gocopy/"+Version, "user agent sent when downloading from http or https urls")
}

func InitTransferFlags(flag *pflag.FlagSet) {
	flag.Int(FlagChunkSize, fs.DefaultChunkSize, "size of each read and write in bytes")
	flag.Bool(FlagVerify, false, "compare checksums of source and destination after each file is copied")
	flag.Bool(FlagNoProgress, false, "log progress records instead of rendering a progress bar")
	flag.Duration(FlagProgressInterval, DefaultProgressInterval, "minimum interval between progress records when the progress bar is disabled")
	flag.Bool(FlagCheckFreeSpace, false, "fail before copying if the destination volume does not have enough free space")
}

func InitLogFlags(flag *pflag.FlagSet) {
	flag.String(FlagLogPath, "-", "path to the log output.  Defaults to the operating system's stdout device.")
	flag.String(FlagLogPerm, "0600", "file permissions for log output file as unix file mode.")
	flag.String(FlagLogTimeLayout, ts.DefaultLayout, fmt.Sprintf("the layout to use for log timestamps.  Use go layout format, or the name of a layout: %s.", strings.Join(ts.LayoutNames(), ", ")))
	flag.String(FlagLogTimeZone, "Local", "the timezone to use for log timestamps")
	flag.Bool(FlagLogClientSigning, false, "log AWS client signature requests")
	flag.Bool(FlagLogClientRequests, false, "log AWS client requests")
	flag.Bool(FlagLogClientResponses, false, "log AWS client responses")
	flag.Bool(FlagLogClientRetries, false, "log AWS client retries")
}

func InitCopyCommandFlags(flag *pflag.FlagSet) {
	InitDebugFlags(flag)
	InitAWSFlags(flag)
	InitCopyFlags(flag)
	InitTransferFlags(flag)
	InitLogFlags(flag)
}

func InitMoveCommandFlags(flag *pflag.FlagSet) {
	InitDebugFlags(flag)
	InitTransferFlags(flag)
	InitLogFlags(flag)
}

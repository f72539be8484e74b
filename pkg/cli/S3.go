// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"

	"github.com/navwar/gotransfer/pkg/log"
	"github.com/navwar/gotransfer/pkg/s3fs"
)

func InitS3Client(ctx context.Context, v *viper.Viper, logger *log.SimpleLogger) *s3.Client {
	profile := v.GetString(FlagAWSProfile)
	if len(profile) == 0 {
		profile = DefaultAWSProfile
	}
	region := v.GetString(FlagAWSRegion)
	if len(region) == 0 {
		region = DefaultAWSRegion
	}
	return s3fs.NewClient(ctx, &s3fs.ClientInput{
		Profile: profile,
		Region:  region,
		// AWS Client
		Endpoint:           v.GetString(FlagAWSS3Endpoint),
		InsecureSkipVerify: v.GetBool(FlagAWSInsecureSkipVerify),
		RetryMaxAttempts:   v.GetInt(FlagAWSRetryMaxAttempts),
		UsePathStyle:       v.GetBool(FlagAWSS3UsePathStyle),
		// AWS Credentials
		AccessKeyID:     v.GetString(FlagAWSAccessKeyID),
		SecretAccessKey: v.GetString(FlagAWSSecretAccessKey),
		SessionToken:    v.GetString(FlagAWSSessionToken),
		// Client Logging
		Logger:             log.NewClientLogger(logger),
		LogClientSigning:   v.GetBool(FlagLogClientSigning),
		LogClientRetries:   v.GetBool(FlagLogClientRetries),
		LogClientRequests:  v.GetBool(FlagLogClientRequests),
		LogClientResponses: v.GetBool(FlagLogClientResponses),
	})
}

package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	zlog "github.com/rs/zerolog/log"
)

// Publisher pushes a packaged function to the execution service and records
// its runtime identifier in the parameter store.
type Publisher struct {
	Lambda *lambda.Client
	SSM    *ssm.Client
}

func NewPublisher(cfg aws.Config) *Publisher {
	return &Publisher{
		Lambda: lambda.NewFromConfig(cfg),
		SSM:    ssm.NewFromConfig(cfg),
	}
}

// Publish uploads the archive under the function's name, requesting a new
// published version, and returns the versioned ARN.
func (p *Publisher) Publish(ctx context.Context, nickname, zipPath string) (string, error) {
	code, err := os.ReadFile(zipPath)
	if err != nil {
		return "", fmt.Errorf("read archive: %w", err)
	}
	zlog.Info().Str("function", nickname).Int("bytes", len(code)).Msg("publishing function code")
	out, err := p.Lambda.UpdateFunctionCode(ctx, &lambda.UpdateFunctionCodeInput{
		FunctionName: aws.String(nickname),
		ZipFile:      code,
		Publish:      true,
	})
	if err != nil {
		return "", fmt.Errorf("update function code: %w", err)
	}
	return aws.ToString(out.FunctionArn), nil
}

// RecordRuntime writes the unversioned ARN as a JSON payload under
// /iac/lambda/<nickname>/runtime, overwriting any previous value.
func (p *Publisher) RecordRuntime(ctx context.Context, nickname, arn string) error {
	payload, err := json.Marshal(map[string]string{"arn": arn})
	if err != nil {
		return err
	}
	name := "/iac/lambda/" + nickname + "/runtime"
	zlog.Info().Str("parameter", name).Msg("recording runtime ARN")
	_, err = p.SSM.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(name),
		Value:     aws.String(string(payload)),
		Type:      ssmtypes.ParameterTypeString,
		Overwrite: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("put parameter %s: %w", name, err)
	}
	return nil
}

// UnversionedARN strips the trailing version qualifier from a published
// function ARN.
func UnversionedARN(arn string) string {
	parts := strings.Split(arn, ":")
	if len(parts) > 7 {
		parts = parts[:7]
	}
	return strings.Join(parts, ":")
}

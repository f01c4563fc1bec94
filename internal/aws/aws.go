// Package aws resolves the AWS credentials and KMS client used by the
// aws-kms operator signer.
package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"
)

const (
	kubernetesTokenPath = "/var/run/secrets/kubernetes.io/serviceaccount/token"
	defaultProfile      = "default"
)

// Identity is the principal the operator signer's KMS calls run as.
type Identity struct {
	Account string
	Arn     string
	UserId  string
}

// KmsSession bundles the loaded AWS config with the principal it resolved to.
type KmsSession struct {
	Config   aws.Config
	Identity *Identity
}

// credentialSource decides how credentials are picked up. Inside a pod the
// projected service account token (IRSA) is used, otherwise a shared profile.
type credentialSource struct {
	tokenPath string
	getenv    func(string) string
}

func defaultCredentialSource() credentialSource {
	return credentialSource{tokenPath: kubernetesTokenPath, getenv: os.Getenv}
}

func (s credentialSource) inKubernetes() bool {
	_, err := os.Stat(s.tokenPath)
	return err == nil
}

func (s credentialSource) profile() string {
	if p := s.getenv("AWS_PROFILE"); p != "" {
		return p
	}
	return defaultProfile
}

func (s credentialSource) loadOptions(region string) []func(*config.LoadOptions) error {
	var options []func(*config.LoadOptions) error
	if !s.inKubernetes() {
		options = append(options, config.WithSharedConfigProfile(s.profile()))
	}
	if region != "" {
		options = append(options, config.WithRegion(region))
	}
	return options
}

// LoadAWSConfig loads credentials for the operator signer. An empty region
// leaves the SDK's own resolution in place.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, defaultCredentialSource().loadOptions(region)...)
}

// GetCallerIdentity asks STS which principal the config resolves to.
func GetCallerIdentity(ctx context.Context, cfg aws.Config) (*Identity, error) {
	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, err
	}
	return &Identity{
		Account: aws.ToString(out.Account),
		Arn:     aws.ToString(out.Arn),
		UserId:  aws.ToString(out.UserId),
	}, nil
}

// NewKmsSession loads the config and resolves the caller identity. A failed
// identity lookup is logged and leaves Identity nil; KMS may still be usable
// through a role the caller cannot introspect.
func NewKmsSession(ctx context.Context, region string, logger *zap.Logger) (*KmsSession, error) {
	cfg, err := LoadAWSConfig(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	session := &KmsSession{Config: cfg}

	identity, err := GetCallerIdentity(ctx, cfg)
	if err != nil {
		logger.Sugar().Warnw("Unable to resolve AWS caller identity", "error", err)
		return session, nil
	}
	session.Identity = identity
	logger.Sugar().Infow("Resolved AWS identity for KMS signing",
		"account", identity.Account,
		"arn", identity.Arn,
		"region", cfg.Region,
	)
	return session, nil
}

// KmsClient returns a KMS client bound to the session's config.
func (s *KmsSession) KmsClient() *kms.Client {
	return kms.NewFromConfig(s.Config)
}

package bootstrap

import (
	"context"
	"errors"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// RegionResolver returns a fallback region when none is configured explicitly.
type RegionResolver func(ctx context.Context) (string, error)

// AWSRegionResolver resolves the region from the default AWS configuration
// chain: environment, shared config files and profile.
func AWSRegionResolver(optFns ...func(*awsconfig.LoadOptions) error) RegionResolver {
	return func(ctx context.Context) (string, error) {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return "", err
		}
		return cfg.Region, nil
	}
}

// ResolveRegion fills cfg.Region from resolve when it is empty.
// An empty resolved region is not an error; the client decides how to handle it.
func ResolveRegion(ctx context.Context, cfg Config, resolve RegionResolver) (Config, error) {
	if cfg.Region != "" || resolve == nil {
		return cfg, nil
	}
	region, err := resolve(ctx)
	if err != nil {
		return cfg, errors.Join(ErrRegion, err)
	}
	cfg.Region = region
	return cfg, nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/topeigen/edgelist"
	"github.com/katalvlaran/topeigen/eigen"
)

const envPrefix = "TOPEIGEN"

// config is the resolved run configuration: flags override environment,
// which overrides the config file, which overrides defaults.
type config struct {
	Iterations     int
	Seed           int64 // 0 picks a wall-clock seed
	Estimator      eigen.Estimator
	Tolerance      float64
	StrictNumerics bool
	Precision      int
	Verify         bool

	LogLevel    string
	LogFormat   string
	MetricsFile string

	S3Region      string
	S3Endpoint    string
	MinioEndpoint string
	MinioAccess   string
	MinioSecret   string
	MinioSecure   bool
}

// newViper returns a viper instance reading TOPEIGEN_* variables, with "."
// and "-" in keys mapped to "_".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("iterations", eigen.DefaultIterations)
	v.SetDefault("seed", 0)
	v.SetDefault("estimator", eigen.SumRatio.String())
	v.SetDefault("tolerance", eigen.DefaultTolerance)
	v.SetDefault("strict-numerics", eigen.DefaultStrictNumerics)
	v.SetDefault("precision", edgelist.DefaultPrecision)
	v.SetDefault("verify", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("minio.secure", true)

	return v
}

// bindFlags binds every flag in fs under its own name, except the ones
// listed in keys which are bound under a dotted config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := f.Name
		if k, ok := keys[f.Name]; ok {
			key = k
		}
		err = v.BindPFlag(key, f)
	})

	return err
}

// readConfigFile merges an optional YAML/TOML/JSON file into v.
func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

func loadConfig(v *viper.Viper) (config, error) {
	est, err := eigen.ParseEstimator(v.GetString("estimator"))
	if err != nil {
		return config{}, err
	}
	c := config{
		Iterations:     v.GetInt("iterations"),
		Seed:           v.GetInt64("seed"),
		Estimator:      est,
		Tolerance:      v.GetFloat64("tolerance"),
		StrictNumerics: v.GetBool("strict-numerics"),
		Precision:      v.GetInt("precision"),
		Verify:         v.GetBool("verify"),
		LogLevel:       v.GetString("log.level"),
		LogFormat:      v.GetString("log.format"),
		MetricsFile:    v.GetString("metrics.file"),
		S3Region:       v.GetString("s3.region"),
		S3Endpoint:     v.GetString("s3.endpoint"),
		MinioEndpoint:  v.GetString("minio.endpoint"),
		MinioAccess:    v.GetString("minio.access-key"),
		MinioSecret:    v.GetString("minio.secret-key"),
		MinioSecure:    v.GetBool("minio.secure"),
	}
	if c.Iterations < 0 {
		return config{}, fmt.Errorf("iterations must be >= 0, got %d", c.Iterations)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return config{}, fmt.Errorf("tolerance must be >= 0, got %v", c.Tolerance)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return config{}, fmt.Errorf("precision must be in [0,17], got %d", c.Precision)
	}

	return c, nil
}

// solverOptions translates c into eigen options. seed is the resolved seed.
func (c config) solverOptions(seed int64) []eigen.Option {
	return []eigen.Option{
		eigen.WithIterations(c.Iterations),
		eigen.WithTolerance(c.Tolerance),
		eigen.WithSeed(seed),
		eigen.WithEstimator(c.Estimator),
		eigen.WithStrictNumerics(c.StrictNumerics),
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/topeigen/internal/logging"
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	v      *viper.Viper
	cfg    config
	log    *logging.Logger
	stdout io.Writer
	stderr io.Writer
}

// flagKeys maps flat flag names to dotted config keys.
var flagKeys = map[string]string{
	"log-level":        "log.level",
	"log-format":       "log.format",
	"metrics-file":     "metrics.file",
	"s3-region":        "s3.region",
	"s3-endpoint":      "s3.endpoint",
	"minio-endpoint":   "minio.endpoint",
	"minio-access-key": "minio.access-key",
	"minio-secret-key": "minio.secret-key",
	"minio-secure":     "minio.secure",
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: newViper(), stdout: stdout, stderr: stderr}
	var configFile string

	cmd := &cobra.Command{
		Use:           "topeigen",
		Short:         "Dominant eigenpairs of sparse symmetric matrices by power iteration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(a.v, cmd.Flags(), flagKeys); err != nil {
				return err
			}
			if err := readConfigFile(a.v, configFile); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log, err = logging.New(a.stderr, cfg.LogFormat, cfg.LogLevel)
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Path to a YAML, TOML or JSON config file")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	pf.String("s3-region", "", "AWS region for s3:// locations (default from the AWS config chain)")
	pf.String("s3-endpoint", "", "Custom S3 endpoint; enables path-style addressing")
	pf.String("minio-endpoint", "", "host:port of the MinIO server for minio:// locations")
	pf.String("minio-access-key", "", "MinIO access key")
	pf.String("minio-secret-key", "", "MinIO secret key")
	pf.Bool("minio-secure", true, "Use TLS towards MinIO")

	cmd.AddCommand(
		newRunCommand(a),
		newGenCommand(a),
		newVersionCommand(a),
	)

	return cmd
}

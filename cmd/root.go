package cmd

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resumesense/internal/matcher"
	"github.com/spigell/resumesense/internal/textutil"
)

const (
	app       = "resumesense"
	envPrefix = "RESUMESENSE"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	MaxTextLength int               `mapstructure:"max-text-length"`
	Workers       int               `mapstructure:"workers"`
	Output        string            `mapstructure:"output"`
	Vocabulary    *VocabularyConfig `mapstructure:"vocabulary"`
	Matcher       *MatcherConfig    `mapstructure:"matcher"`
	Ranking       *RankingConfig    `mapstructure:"ranking"`
	Extract       *ExtractConfig    `mapstructure:"extract"`
}

type VocabularyConfig struct {
	ExtraSkills []string `mapstructure:"extra-skills"`
}

type MatcherConfig struct {
	ExtraStopwords    []string `mapstructure:"extra-stopwords"`
	StrongThreshold   float64  `mapstructure:"strong-threshold"`
	ModerateThreshold float64  `mapstructure:"moderate-threshold"`
}

type RankingConfig struct {
	MinimumScore   float64  `mapstructure:"minimum-score"`
	RequiredSkills []string `mapstructure:"required-skills"`
	DedupeContacts bool     `mapstructure:"dedupe-contacts"`
}

type ExtractConfig struct {
	TempDir string `mapstructure:"temp-dir"`
}

var defaults = map[string]any{
	"max-text-length":            textutil.DefaultMaxLength,
	"workers":                    runtime.NumCPU(),
	"output":                     OutputText,
	"vocabulary.extra-skills":    []string{},
	"matcher.extra-stopwords":    []string{},
	"matcher.strong-threshold":   matcher.DefaultStrongThreshold,
	"matcher.moderate-threshold": matcher.DefaultModerateThreshold,
	"ranking.minimum-score":      0.0,
	"ranking.required-skills":    []string{},
	"ranking.dedupe-contacts":    true,
	"extract.temp-dir":           "",
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resumesense extracts structured data from resumes and matches them against job descriptions",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resumesense.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("output", "o", OutputText, "result format: text, json or yaml")
	rootCmd.PersistentFlags().Int("workers", runtime.NumCPU(), "number of documents processed concurrently")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
}

func initConfig() {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was requested explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.AllSettings())
}

// decodeConfig accepts comma separated strings for list keys so that lists can
// be set from environment variables.
func decodeConfig(settings map[string]any) (*Config, error) {
	var config *Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("creating config decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if config == nil {
		config = &Config{}
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() error {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case "":
		c.Output = OutputText
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}

	if c.Vocabulary == nil {
		c.Vocabulary = &VocabularyConfig{}
	}
	if c.Matcher == nil {
		c.Matcher = &MatcherConfig{}
	}
	if c.Ranking == nil {
		c.Ranking = &RankingConfig{}
	}
	if c.Extract == nil {
		c.Extract = &ExtractConfig{}
	}

	if c.Matcher.StrongThreshold == 0 && c.Matcher.ModerateThreshold == 0 {
		c.Matcher.StrongThreshold = matcher.DefaultStrongThreshold
		c.Matcher.ModerateThreshold = matcher.DefaultModerateThreshold
	}

	c.Vocabulary.ExtraSkills = trimAll(c.Vocabulary.ExtraSkills)
	c.Matcher.ExtraStopwords = trimAll(c.Matcher.ExtraStopwords)
	c.Ranking.RequiredSkills = trimAll(c.Ranking.RequiredSkills)

	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func viperBind(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		log.Fatalf("binding --%s flag: %v", flag, err)
	}
}

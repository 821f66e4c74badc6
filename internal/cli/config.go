package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tperrors "github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/pipeline"
)

// Config keys. They match the flag names, so a flag, a TERMPLOT_* variable
// and a config file entry all set the same value. Flags win over the
// environment, which wins over the file.
const (
	keyWidth   = "width"
	keyHeight  = "height"
	keyNoColor = "no-color"
	keyNoCache = "no-cache"
	keyListen  = "listen"
	keyRedis   = "redis-url"
)

// config layers flags, environment and the config file with viper.
type config struct {
	v    *viper.Viper
	file string // --config
}

func newConfig() *config {
	v := viper.New()
	v.SetEnvPrefix("TERMPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyWidth, pipeline.DefaultWidth)
	v.SetDefault(keyHeight, pipeline.DefaultHeight)
	v.SetDefault(keyListen, pipeline.DefaultListen)
	return &config{v: v}
}

func (c *config) bindPersistent(root *cobra.Command) {
	root.PersistentFlags().StringVar(&c.file, "config", "",
		"config file (default $XDG_CONFIG_HOME/"+appName+"/config.toml)")
}

// load binds the running command's flags and reads the config file. A
// missing default config file is not an error; a missing --config file is.
func (c *config) load(cmd *cobra.Command) error {
	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return tperrors.Wrap(tperrors.ErrCodeInternal, err, "bind flags")
	}

	if c.file != "" {
		c.v.SetConfigFile(c.file)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		c.v.SetConfigFile(filepath.Join(dir, "config.toml"))
	}

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.file == "" && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil
		}
		return tperrors.Wrap(tperrors.ErrCodeInvalidInput, err, "read config %s", c.v.ConfigFileUsed())
	}
	return nil
}

func (c *config) width() int       { return c.v.GetInt(keyWidth) }
func (c *config) height() int      { return c.v.GetInt(keyHeight) }
func (c *config) noCache() bool    { return c.v.GetBool(keyNoCache) }
func (c *config) listen() string   { return c.v.GetString(keyListen) }
func (c *config) redisURL() string { return c.v.GetString(keyRedis) }

// plain reports whether escapes should be stripped, honoring the NO_COLOR
// convention as well as --no-color.
func (c *config) plain() bool {
	return c.v.GetBool(keyNoColor) || os.Getenv("NO_COLOR") != ""
}

// addRenderFlags registers the flags shared by commands that render.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Int(keyWidth, pipeline.DefaultWidth, "target width in dots (0 = scene or intrinsic size)")
	cmd.Flags().Int(keyHeight, pipeline.DefaultHeight, "target height in dots (0 = scene or intrinsic size)")
	cmd.Flags().Bool(keyNoColor, false, "strip colors and styles from the output")
}

package pkgconfig

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Viper reads a config file through github.com/spf13/viper. Every key can be
// overridden from the environment by upper-casing it and replacing dots with
// underscores.
type Viper struct {
	v *viper.Viper
}

// NewViper loads the file at pathFile; its extension selects the format.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()
	v.SetConfigFile(pathFile)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetArray accepts a YAML list or a comma separated string, which is how a
// list arrives from the environment. Blank items are dropped.
func (vc *Viper) GetArray(key string) []string {
	var out []string
	for _, item := range vc.v.GetStringSlice(key) {
		for _, p := range strings.Split(item, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// GetDuration parses values such as "10s" or "1m".
func (vc *Viper) GetDuration(key string) time.Duration {
	return vc.v.GetDuration(key)
}

// Close releases nothing; the file is read once at startup.
func (vc *Viper) Close() error {
	return nil
}

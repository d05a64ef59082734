package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Options are the settings an options file may supply. Flags always win over
// file values; the file only fills in what was not passed on the command line.
type Options struct {
	NumLSB         int    `mapstructure:"num_lsb"`
	InputImagePath string `mapstructure:"input_image_path"`
	StegImagePath  string `mapstructure:"steg_image_path"`
	InputFilePath  string `mapstructure:"input_file_path"`
	OutputFilePath string `mapstructure:"output_file_path"`
}

// LoadOptions reads the options file at optionsFile, or the default
// $HOME/.lsbsteg.yaml when no path is given. A missing default file is not an
// error; a missing explicitly supplied file is.
func LoadOptions(optionsFile string) (Options, error) {
	vip := viper.New()

	if optionsFile != "" {
		vip.SetConfigFile(optionsFile)
		if err := vip.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("failed to read options file: %w", err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		vip.SetConfigName(".lsbsteg")
		vip.SetConfigType("yaml")
		vip.AddConfigPath(home)
		_ = vip.ReadInConfig()
	}

	var opts Options
	if err := vip.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse options file: %w", err)
	}

	return opts, nil
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	defSeat           = "seat0"
	defPollIntervalMs = 5
	defQueueSize      = 256

	defDeviceDir = "/dev/input"

	EnvVarPrefix = "IC"
)

var CLIConfig *Config
var replacer = strings.NewReplacer(".", "_")

type Config struct {
	Monitor *Monitor `mapstructure:"monitor"`
	Devices *Devices `mapstructure:"devices"`
}

type Monitor struct {
	Seat           string `mapstructure:"seat"`
	PollIntervalMs int    `mapstructure:"poll_interval_ms"`
	QueueSize      int    `mapstructure:"queue_size"`
}

type Devices struct {
	Dir string `mapstructure:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Monitor: &Monitor{
			Seat:           defSeat,
			PollIntervalMs: defPollIntervalMs,
			QueueSize:      defQueueSize,
		},
		Devices: &Devices{
			Dir: defDeviceDir,
		},
	}
}

func NewConfig(cfgFile string) error {
	v := viper.New()

	CLIConfig = DefaultConfig()

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	if b, err := yaml.Marshal(DefaultConfig()); err != nil {
		return err
	} else {
		defaultConfig := bytes.NewReader(b)
		if err := v.MergeConfig(defaultConfig); err != nil {
			return err
		}
	}

	if cfgFile != "" {
		if fi, err := os.Stat(cfgFile); err == nil {
			if !fi.IsDir() {
				// overwrite values from config
				v.SetConfigType("yaml")
				v.SetConfigFile(cfgFile)
				if err := v.MergeInConfig(); err != nil {
					fmt.Printf("Unexpected error parsing config file [%s]. Error: %v\n", fi.Name(), err)
				}
			} else {
				fmt.Printf("Config file points to a directory, not a file [%s]\n", cfgFile)
			}
		} else {
			fmt.Printf("No config file found [%s], or unable to derive location. Error %v\n", cfgFile, err)
		}
	}

	// Use environment variables as final override
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)

	// Preload environment bindings so they are processed on load
	bindVars(v, reflect.TypeOf(*CLIConfig), "")
	return v.Unmarshal(CLIConfig)
}

func bindVars(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag != "" {
			tag = prefix + strings.ToUpper(tag)

			if field.Type.Kind() == reflect.Struct {
				bindVars(v, field.Type, tag+".")
			} else if field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
				bindVars(v, field.Type.Elem(), tag+".")
			} else {
				if err := v.BindEnv(tag); err != nil {
					fmt.Printf("Unable to bind to environment variable: %s. Error: %v\n", tag, err)
				}
			}
		}
	}
}

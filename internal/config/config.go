package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/kuba-engine/internal/entity"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env:"KUBA_LOG_LEVEL" env-default:"info"`
	PlayerA        Player `yaml:"player-a" env-prefix:"KUBA_PLAYER_A_"`
	PlayerB        Player `yaml:"player-b" env-prefix:"KUBA_PLAYER_B_"`
	SkipNamePrompt bool   `yaml:"skip-name-prompt" env:"KUBA_SKIP_NAME_PROMPT"`
}

type Player struct {
	Name  string `yaml:"name" env:"NAME"`
	Color string `yaml:"color" env:"COLOR"`
}

// MustLoad - load all configurations in config.yml file. Without the file only the environment is read.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	config.PlayerA.setDefaults("PlayerA", entity.MarbleWhite)
	config.PlayerB.setDefaults("PlayerB", entity.MarbleBlack)

	return config, nil
}

// Marble - returns the configured color token as a marble.
func (that *Player) Marble() (entity.Marble, error) {
	marble, err := entity.ParseMarble(that.Color)
	if err != nil {
		return entity.MarbleNone, fmt.Errorf("player %q: %w", that.Name, err)
	}

	return marble, nil
}

func (that *Player) setDefaults(name string, color entity.Marble) {
	if that.Name == "" {
		that.Name = name
	}

	if that.Color == "" {
		that.Color = color.String()
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjack-trainer/internal/util"
	"blackjack-trainer/pkg/playable/blackjack"
)

// Config provides configuration for the blackjack trainer
type Config struct {
	loaded bool

	Addr string `yaml:"addr"`
	Log  struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Table Table `yaml:"table"`
	CORS  struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

// Table configures the practice tables
// Money amounts are whole dollars and delays are in milliseconds.
type Table struct {
	Seats        int    `yaml:"seats"`
	MinBet       int    `yaml:"minBet" envconfig:"min_bet"`
	MaxBet       int    `yaml:"maxBet" envconfig:"max_bet"`
	MinSeatBet   int    `yaml:"minSeatBet" envconfig:"min_seat_bet"`
	MaxSeatBet   int    `yaml:"maxSeatBet" envconfig:"max_seat_bet"`
	PayoutConfig string `yaml:"payoutConfig" envconfig:"payout_config"`
	Level        int    `yaml:"level"`
	SideBets     struct {
		TwentyOnePlusThree bool `yaml:"twentyOnePlusThree" envconfig:"twenty_one_plus_three"`
		PerfectPairs       bool `yaml:"perfectPairs" envconfig:"perfect_pairs"`
	} `yaml:"sideBets" envconfig:"side_bets"`
	SideBetStake    int `yaml:"sideBetStake" envconfig:"side_bet_stake"`
	DealerStepDelay int `yaml:"dealerStepDelay" envconfig:"dealer_step_delay"`
	NextRoundDelay  int `yaml:"nextRoundDelay" envconfig:"next_round_delay"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
		Table: Table{
			Seats:           4,
			MinBet:          5,
			MaxBet:          500,
			MinSeatBet:      5,
			MaxSeatBet:      50,
			PayoutConfig:    string(blackjack.PayoutConfigThreeToTwo),
			Level:           int(blackjack.LevelFullSimulation),
			SideBetStake:    5,
			DealerStepDelay: 1000,
		},
	}

	cfg.Log.Level = "info"
	cfg.Table.SideBets.TwentyOnePlusThree = true
	cfg.Table.SideBets.PerfectPairs = true
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bjt", &cfg); err != nil {
		return err
	}

	if _, err := cfg.Table.TableOptions(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// TableOptions converts the table config to the options a blackjack table is created with
func (t Table) TableOptions() (blackjack.TableOptions, error) {
	opts := blackjack.DefaultTableOptions()
	opts.MinBet = t.MinBet * 100
	opts.MaxBet = t.MaxBet * 100
	opts.Level = blackjack.Level(t.Level)
	opts.Setup = blackjack.TableSetup{
		Seats:        t.Seats,
		PayoutConfig: blackjack.PayoutConfig(t.PayoutConfig),
		MinBet:       t.MinSeatBet * 100,
		MaxBet:       t.MaxSeatBet * 100,
	}

	opts.SideBets = []blackjack.SideBet{}
	if t.SideBets.TwentyOnePlusThree {
		opts.SideBets = append(opts.SideBets, blackjack.SideBetTwentyOnePlusThree)
	}

	if t.SideBets.PerfectPairs {
		opts.SideBets = append(opts.SideBets, blackjack.SideBetPerfectPairs)
	}

	opts.SideBetStake = t.SideBetStake * 100
	opts.DealerStepDelay = time.Duration(t.DealerStepDelay) * time.Millisecond
	opts.NextRoundDelay = time.Duration(t.NextRoundDelay) * time.Millisecond

	if opts.Level < blackjack.LevelBasic || opts.Level > blackjack.LevelSurrender {
		return opts, fmt.Errorf("table.level must be between %d and %d", blackjack.LevelBasic, blackjack.LevelSurrender)
	}

	if opts.MinBet <= 0 || opts.MaxBet < opts.MinBet {
		return opts, fmt.Errorf("invalid table bet range $%d to $%d", t.MinBet, t.MaxBet)
	}

	if opts.DealerStepDelay <= 0 {
		return opts, fmt.Errorf("table.dealerStepDelay must be > 0")
	}

	return opts, opts.Setup.Validate()
}

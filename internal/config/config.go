package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	OpenAI   OpenAI   `koanf:"openai"`
	Academic Academic `koanf:"academic"`
	Calendar Calendar `koanf:"calendar"`
	Sync     Sync     `koanf:"sync"`
}

type OpenAI struct {
	ApiKey      string  `koanf:"apikey"`
	Model       string  `koanf:"model"`
	Temperature float32 `koanf:"temperature"`
	MaxTokens   int     `koanf:"maxtokens"`
}

// Academic holds fallback values used when source text is incomplete.
// Year completes dates that do not mention one.
type Academic struct {
	Year int `koanf:"year"`
}

type Calendar struct {
	// UIDDomain is the suffix of every generated iCalendar UID.
	UIDDomain string `koanf:"uiddomain"`
	Timezone  string `koanf:"timezone"`
}

type Sync struct {
	// RequestDelayMs is the pause between consecutive Google Calendar
	// calls within one batch, to stay under the API rate limit.
	RequestDelayMs int `koanf:"requestdelayms"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		OpenAI: OpenAI{
			Model:       "gpt-4",
			Temperature: 0.1,
			MaxTokens:   2000,
		},
		Academic: Academic{
			Year: 2025,
		},
		Calendar: Calendar{
			UIDDomain: "syllabus-calendar.com",
			Timezone:  "America/New_York",
		},
		Sync: Sync{
			RequestDelayMs: 100,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "SYLLACAL_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SYLLACAL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

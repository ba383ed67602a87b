package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	datagen "github.com/goliatone/go-datagen"
	"github.com/goliatone/go-datagen/pkg/format"
)

type jobConfig struct {
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
	// Records is a pointer so a config file can express the legal zero-record
	// run; nil means unset.
	Records *int   `yaml:"records"`
	Locale  string `yaml:"locale"`
	Format  string `yaml:"format"`
}

func main() {
	templatePath := flag.String("template", "", "record template path")
	output := flag.String("output", "", "output file (stdout if empty)")
	count := flag.Int("count", 1000, "number of records to generate")
	locale := flag.String("locale", "en", "provider locale")
	formatName := flag.String("format", "plain", "output container: plain, csv or json")
	configPath := flag.String("config", "", "YAML job config; explicit flags override it")
	listTags := flag.Bool("list-tags", false, "print available module.function paths for the locale and exit")
	flag.Parse()

	job := jobConfig{
		Template: *templatePath,
		Output:   *output,
		Records:  count,
		Locale:   *locale,
		Format:   *formatName,
	}
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		job = mergeConfig(loaded, job)
	}

	if *listTags {
		if err := printTags(job.Locale); err != nil {
			log.Fatalf("Failed to list tags: %v", err)
		}
		return
	}

	if job.Template == "" {
		log.Fatalf("a record template is required; pass -template or set it in -config")
	}
	templateText, err := os.ReadFile(job.Template)
	if err != nil {
		log.Fatalf("Failed to read template: %v", err)
	}

	selector, err := format.ParseFormat(job.Format)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}

	sink := os.Stdout
	if job.Output != "" {
		f, err := os.Create(job.Output)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		sink = f
	}

	req := datagen.Request{
		Template: string(templateText),
		Output:   sink,
		Records:  *job.Records,
		Locale:   job.Locale,
		Format:   selector,
	}
	if err := datagen.Generate(context.Background(), req); err != nil {
		log.Fatalf("Failed to generate records: %v", err)
	}

	if job.Output != "" {
		fmt.Printf("%d record(s) written to %s\n", *job.Records, job.Output)
	}
}

func loadConfig(path string) (jobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jobConfig{}, err
	}
	var cfg jobConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return jobConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// mergeConfig starts from the config file and applies any flag the user set
// explicitly on the command line.
func mergeConfig(base, flags jobConfig) jobConfig {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["template"] || base.Template == "" {
		base.Template = flags.Template
	}
	if set["output"] || base.Output == "" {
		base.Output = flags.Output
	}
	if set["count"] || base.Records == nil {
		base.Records = flags.Records
	}
	if set["locale"] || base.Locale == "" {
		base.Locale = flags.Locale
	}
	if set["format"] || base.Format == "" {
		base.Format = flags.Format
	}
	return base
}

func printTags(locale string) error {
	registry := datagen.BuiltinRegistry()
	graph, err := registry.Graph(locale)
	if err != nil {
		return err
	}

	var tags []string
	for moduleName, module := range graph {
		for name := range module {
			tags = append(tags, moduleName+"."+name)
		}
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}

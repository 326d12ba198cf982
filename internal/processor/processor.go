// Package processor validates batches of GeoJSON sources concurrently and
// optionally writes their normalized form to disk.
package processor

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/woozymasta/geoschema/geojson"
	"github.com/woozymasta/geoschema/internal/output"

	"github.com/rs/zerolog/log"
)

// ErrExists is reported when an output file is kept because Force is unset.
var ErrExists = errors.New("output file exists")

// Processor loads sources with Schema. Sources are local paths or http(s)
// URLs fetched with Client.
type Processor struct {
	Client *http.Client
	Schema *geojson.Schema

	// OutDir receives one normalized file per valid source. Nothing is
	// written when empty.
	OutDir string
	Format string
	Minify bool
	Force  bool
}

// Result is the outcome of one source.
type Result struct {
	Source  string
	Objects int
	Output  string
	Err     error
}

type job struct {
	index  int
	source string
	output string
}

// Process validates sources using concurrency workers. Results are
// returned in source order.
func (p *Processor) Process(sources []string, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = 1
	}

	jobs := make(chan job, len(sources))
	results := make([]Result, len(sources))

	var outputs []string
	if p.OutDir != "" {
		outputs = outputNames(sources, p.Format)
	}

	go func() {
		for i, s := range sources {
			j := job{index: i, source: s}
			if outputs != nil {
				j.output = filepath.Join(p.OutDir, outputs[i])
			}
			jobs <- j
		}
		close(jobs)
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := p.processSource(j.source, j.output)
				if res.Err != nil {
					log.Debug().
						Err(res.Err).
						Str("source", j.source).
						Msg("Source rejected")
				}
				results[j.index] = res
			}
		}()
	}
	wg.Wait()

	return results
}

func (p *Processor) processSource(source, outPath string) Result {
	res := Result{Source: source}

	data, err := p.read(source)
	if err != nil {
		res.Err = err
		return res
	}

	objs, err := p.Schema.DecodeJSON(data)
	if err != nil {
		res.Err = err
		return res
	}
	res.Objects = len(objs)

	if outPath == "" {
		return res
	}
	res.Output = outPath

	var v any = objs
	if !p.Schema.Options().Many {
		v = objs[0]
	}
	dumped, err := p.Schema.Encode(v)
	if err != nil {
		res.Err = err
		return res
	}
	rendered, err := output.Render(dumped, p.Format, p.Minify)
	if err != nil {
		res.Err = err
		return res
	}

	res.Err = saveOutput(p.OutDir, res.Output, rendered, p.Force)
	return res
}

func (p *Processor) read(source string) ([]byte, error) {
	if isURL(source) {
		client := p.Client
		if client == nil {
			client = http.DefaultClient
		}
		return fetch(client, source)
	}
	return os.ReadFile(source)
}

// outputNames assigns every source a distinct output file name. A base
// name already taken earlier in the batch gets a numeric suffix, so
// a/x.json and b/x.json become x.geojson and x-2.geojson.
func outputNames(sources []string, format string) []string {
	ext := ".geojson"
	if format == output.YAML {
		ext = ".yaml"
	}

	names := make([]string, len(sources))
	used := make(map[string]bool, len(sources))
	for i, source := range sources {
		name := outputName(source, format)
		base := strings.TrimSuffix(name, ext)
		for n := 2; used[name]; n++ {
			name = base + "-" + strconv.Itoa(n) + ext
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// outputName derives the output file name from the last path segment of
// source.
func outputName(source, format string) string {
	base := source
	if isURL(source) {
		base = strings.SplitN(base, "?", 2)[0]
		base = strings.TrimRight(base, "/")
	}
	base = filepath.Base(filepath.FromSlash(base))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "output"
	}

	ext := ".geojson"
	if format == output.YAML {
		ext = ".yaml"
	}
	return base + ext
}

// saveOutput writes data to path, creating dir when needed. Unless force
// is set an existing file is left alone and ErrExists returned.
func saveOutput(dir, path string, data []byte, force bool) (err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
			if err == nil {
				err = closeErr
			}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

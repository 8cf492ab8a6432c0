// Package source loads proxy groups from files and standard input.
//
// A group file is either YAML or plain text. YAML files hold a selector
// group document (name, type, now, all) or a bare list of names. Text files
// hold one name per line; blank lines and lines starting with '#' are
// skipped. Several files are loaded concurrently and concatenated in
// argument order.
package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/proxygrid/internal/logging"
)

// StdinPath is the path argument that reads standard input.
const StdinPath = "-"

// maxConcurrentLoads bounds parallel file reads.
const maxConcurrentLoads = 8

// ErrNoItems is returned when no source produced a single proxy name.
var ErrNoItems = errors.New("no proxies found")

// Group is a named, ordered set of proxies with an optional active member.
type Group struct {
	Name string   `yaml:"name"           json:"name"`
	Type string   `yaml:"type,omitempty" json:"type,omitempty"`
	Now  string   `yaml:"now,omitempty"  json:"now,omitempty"`
	All  []string `yaml:"all"            json:"all"`
}

// Parse decodes a group from data. name is used for the group name and to
// pick the format: names ending in .yaml or .yml are parsed as YAML.
func Parse(name string, data []byte) (Group, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return parseYAML(name, data)
	default:
		return parseText(name, data)
	}
}

func parseYAML(name string, data []byte) (Group, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Group{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	g := Group{Name: groupName(name)}
	if len(node.Content) == 0 {
		return g, nil
	}

	doc := node.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&g.All); err != nil {
			return Group{}, fmt.Errorf("decoding proxy list in %s: %w", name, err)
		}
	case yaml.MappingNode:
		if err := doc.Decode(&g); err != nil {
			return Group{}, fmt.Errorf("decoding group in %s: %w", name, err)
		}
		if g.Name == "" {
			g.Name = groupName(name)
		}
	default:
		return Group{}, fmt.Errorf("%s: expected a group mapping or a list of proxies", name)
	}
	g.All = clean(g.All)
	return g, nil
}

func parseText(name string, data []byte) (Group, error) {
	g := Group{Name: groupName(name)}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g.All = append(g.All, line)
	}
	if err := sc.Err(); err != nil {
		return Group{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return g, nil
}

func clean(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func groupName(path string) string {
	if path == StdinPath {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadFile reads and parses one group file.
func LoadFile(path string) (Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Group{}, fmt.Errorf("reading proxy list: %w", err)
	}
	return Parse(path, data)
}

// Load reads every path concurrently and merges the groups in argument
// order. Duplicate names keep their first position. The first non-empty
// "now" wins and is dropped if it does not name a loaded proxy. StdinPath
// reads stdin as text.
func Load(ctx context.Context, paths []string, stdin io.Reader) (Group, error) {
	logger := logging.FromContext(ctx).With().Str("component", "source").Logger()

	groups := make([]Group, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentLoads)
	for i, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			var g Group
			var err error
			if path == StdinPath {
				g, err = readStdin(stdin)
			} else {
				g, err = LoadFile(path)
			}
			if err != nil {
				return err
			}
			groups[i] = g
			logger.Debug().Str("path", path).Int("proxies", len(g.All)).Msg("loaded proxy list")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Group{}, err
	}

	merged := Merge(logger, groups...)
	if len(merged.All) == 0 {
		return merged, ErrNoItems
	}
	return merged, nil
}

func readStdin(r io.Reader) (Group, error) {
	if r == nil {
		return Group{}, errors.New("stdin is not available")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Group{}, fmt.Errorf("reading stdin: %w", err)
	}
	return Parse(StdinPath, data)
}

// Merge concatenates groups, dropping repeated names.
func Merge(logger zerolog.Logger, groups ...Group) Group {
	var out Group
	seen := make(map[string]struct{})
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
		if out.Type == "" {
			out.Type = g.Type
		}
		if out.Now == "" {
			out.Now = g.Now
		}
		for _, p := range g.All {
			if _, dup := seen[p]; dup {
				logger.Warn().Str("proxy", p).Str("group", g.Name).Msg("duplicate proxy ignored")
				continue
			}
			seen[p] = struct{}{}
			out.All = append(out.All, p)
		}
	}
	out.Name = strings.Join(names, "+")
	if _, ok := seen[out.Now]; !ok {
		out.Now = ""
	}
	return out
}

// Generate builds a synthetic group of n proxies named prefix-00001 and so on.
func Generate(n int, prefix string) Group {
	if prefix == "" {
		prefix = "proxy"
	}
	g := Group{Name: "generated", Type: "Selector", All: make([]string, 0, max(n, 0))}
	for i := 1; i <= n; i++ {
		g.All = append(g.All, fmt.Sprintf("%s-%05d", prefix, i))
	}
	if n > 0 {
		g.Now = g.All[0]
	}
	return g
}

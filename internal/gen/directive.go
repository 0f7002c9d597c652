package gen

import (
	"fmt"
	"go/ast"
	"reflect"
	"strconv"
	"strings"

	"github.com/danmuck/mcwire/version"
)

const directivePrefix = "//mcgen:"

type directive struct {
	kind string
	args []string
	opts map[string]string
}

// directivesOf collects //mcgen: lines. CommentGroup.Text drops directive
// comments, so the raw list is scanned instead.
func directivesOf(groups ...*ast.CommentGroup) []directive {
	var out []directive
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			if !strings.HasPrefix(c.Text, directivePrefix) {
				continue
			}
			fields := strings.Fields(strings.TrimPrefix(c.Text, directivePrefix))
			if len(fields) == 0 {
				out = append(out, directive{})
				continue
			}
			d := directive{kind: fields[0], opts: map[string]string{}}
			for _, f := range fields[1:] {
				if k, v, ok := strings.Cut(f, "="); ok {
					d.opts[k] = v
				} else {
					d.args = append(d.args, f)
				}
			}
			out = append(out, d)
		}
	}
	return out
}

// releaseRange reads since/until options into catalog versions.
func releaseRange(opts map[string]string) (since, until version.Version, err error) {
	for key, raw := range opts {
		switch key {
		case "since", "until":
			v, ok := version.Lookup(raw)
			if !ok {
				return 0, 0, fmt.Errorf("unknown release %q", raw)
			}
			if key == "since" {
				since = v
			} else {
				until = v
			}
		default:
			return 0, 0, fmt.Errorf("unknown option %q", key)
		}
	}
	if since != version.Unknown && until != version.Unknown && since > until {
		return 0, 0, fmt.Errorf("empty range since=%s until=%s", since, until)
	}
	return since, until, nil
}

// fieldRange parses the mc struct tag of a field.
func fieldRange(tag *ast.BasicLit) (since, until version.Version, err error) {
	if tag == nil {
		return 0, 0, nil
	}
	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return 0, 0, fmt.Errorf("bad struct tag %s", tag.Value)
	}
	value, ok := reflect.StructTag(raw).Lookup("mc")
	if !ok || value == "" {
		return 0, 0, nil
	}
	opts := map[string]string{}
	for _, part := range strings.Split(value, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return 0, 0, fmt.Errorf("bad mc tag entry %q", part)
		}
		opts[k] = v
	}
	return releaseRange(opts)
}

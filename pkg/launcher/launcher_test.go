package launcher

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/lvim-tech/wallpick/pkg/config"
)

type recorder struct {
	calls [][]string
	fail  map[string]error
}

func (r *recorder) start(name string, args ...string) error {
	if err := r.fail[name]; err != nil {
		return err
	}
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil
}

func TestTemplateArgv(t *testing.T) {
	const path = "/home/me/walls/a b.png"

	tests := []struct {
		name string
		tpl  Template
		want []string
	}{
		{
			name: "placeholder",
			tpl:  Template{Command: "swww img {path}"},
			want: []string{"swww", "img", path},
		},
		{
			name: "appended",
			tpl:  Template{Command: "wallust run"},
			want: []string{"wallust", "run", path},
		},
		{
			name: "flags after path",
			tpl:  Template{Command: "swww img {path} --transition-type grow --transition-fps 60"},
			want: []string{"swww", "img", path, "--transition-type", "grow", "--transition-fps", "60"},
		},
		{
			name: "quoted words",
			tpl:  Template{Command: `notify "new wallpaper" {path}`},
			want: []string{"notify", "new wallpaper", path},
		},
		{
			name: "placeholder inside word",
			tpl:  Template{Command: "swaybg --image={path}"},
			want: []string{"swaybg", "--image=" + path},
		},
		{
			name: "args list",
			tpl:  Template{Command: "wal", Args: []string{"-n", "-i", "{path}"}},
			want: []string{"wal", "-n", "-i", path},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tpl.Argv(path)
			if err != nil {
				t.Fatalf("Argv() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Argv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateArgvErrors(t *testing.T) {
	if _, err := (Template{Name: "blank"}).Argv("/x.png"); !IsEmptyCommand(err) {
		t.Errorf("Argv() error = %v, want ErrEmptyCommand", err)
	}

	if _, err := (Template{Command: `swww img "{path}`}).Argv("/x.png"); err == nil {
		t.Error("Argv() expected error for unbalanced quote")
	}
}

func TestDecode(t *testing.T) {
	tpl, err := Decode("swww", map[string]any{
		"enabled": true,
		"command": "swww img {path}",
		"order":   int64(2),
		"args":    "--resize=crop",
	})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := Template{Name: "swww", Command: "swww img {path}", Args: []string{"--resize=crop"}, Order: 2}
	if !reflect.DeepEqual(tpl, want) {
		t.Errorf("Decode() = %+v, want %+v", tpl, want)
	}

	if _, err := Decode("broken", map[string]any{"command": ""}); !IsEmptyCommand(err) {
		t.Errorf("Decode() error = %v, want ErrEmptyCommand", err)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		Commands: config.CommandsConfig{
			"wallust": {"command": "wallust run {path}", "order": int64(2)},
			"swww":    {"command": "swww img {path}", "order": int64(1)},
			"beta":    {"command": "beta", "order": int64(2)},
			"off":     {"command": "off {path}", "enabled": false},
		},
	}

	templates, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	var names []string
	for _, tpl := range templates {
		names = append(names, tpl.Name)
	}
	if want := []string{"swww", "beta", "wallust"}; !reflect.DeepEqual(names, want) {
		t.Errorf("FromConfig() order = %v, want %v", names, want)
	}
}

func TestFromConfigInvalid(t *testing.T) {
	cfg := &config.Config{
		Commands: config.CommandsConfig{
			"bad": {"command": `swww "unterminated`},
		},
	}
	if _, err := FromConfig(cfg); err == nil {
		t.Error("FromConfig() expected error")
	}
}

func TestLaunchAll(t *testing.T) {
	rec := &recorder{}
	runner := &Runner{
		Templates: []Template{
			{Name: "swww", Command: "swww img {path}"},
			{Name: "wallust", Command: "wallust run {path}"},
		},
		Start:  rec.start,
		Logger: zaptest.NewLogger(t),
	}

	const path = "/walls/a.png"
	if n := runner.LaunchAll(path); n != 2 {
		t.Errorf("LaunchAll() = %d, want 2", n)
	}

	want := [][]string{
		{"swww", "img", path},
		{"wallust", "run", path},
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %q, want %q", rec.calls, want)
	}
}

func TestLaunchAllIgnoresFailures(t *testing.T) {
	rec := &recorder{fail: map[string]error{"swww": errors.New("exec: not found")}}
	runner := &Runner{
		Templates: []Template{
			{Name: "swww", Command: "swww img {path}"},
			{Name: "blank"},
			{Name: "wallust", Command: "wallust run {path}"},
		},
		Start:  rec.start,
		Logger: zaptest.NewLogger(t),
	}

	if n := runner.LaunchAll("/walls/a.png"); n != 1 {
		t.Errorf("LaunchAll() = %d, want 1", n)
	}
	if len(rec.calls) != 1 || rec.calls[0][0] != "wallust" {
		t.Errorf("calls = %q, want only wallust", rec.calls)
	}
}

func TestLaunchAllWithoutStarter(t *testing.T) {
	runner := &Runner{Templates: []Template{{Name: "swww", Command: "swww img"}}}
	if n := runner.LaunchAll("/walls/a.png"); n != 0 {
		t.Errorf("LaunchAll() = %d, want 0", n)
	}
}

func TestNewRunner(t *testing.T) {
	runner := NewRunner(nil, nil)
	if runner.Start == nil || runner.Logger == nil {
		t.Error("NewRunner() should set Start and Logger")
	}
}

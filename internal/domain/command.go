package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Command identifies one server operation the CLI can issue.
type Command string

const (
	CommandPlay      Command = "play"
	CommandPause     Command = "pause"
	CommandReload    Command = "reload"
	CommandStatus    Command = "status"
	CommandLibrary   Command = "library"
	CommandDrivers   Command = "drivers"
	CommandDriverGet Command = "driver-get"
	CommandDriverSet Command = "driver-set"
	CommandVolume    Command = "volume"
	CommandTrigger   Command = "trigger"
	CommandPreview   Command = "preview"
	CommandUpload    Command = "upload"
)

// CommandDef is one dispatch table entry: the fixed method and path a
// command maps to, plus an optional body builder fed from the command
// argument.
type CommandDef struct {
	Method HTTPMethod
	Path   string

	// Body builds the request payload from the command argument.
	// Nil means the command sends no body.
	Body func(arg string) (BodySpec, error)
}

var catalog = map[Command]CommandDef{
	CommandPlay:      {Method: MethodPost, Path: "/play"},
	CommandPause:     {Method: MethodPost, Path: "/pause"},
	CommandReload:    {Method: MethodPost, Path: "/reload"},
	CommandStatus:    {Method: MethodGet, Path: "/status"},
	CommandLibrary:   {Method: MethodGet, Path: "/library"},
	CommandDrivers:   {Method: MethodGet, Path: "/driver/list"},
	CommandDriverGet: {Method: MethodGet, Path: "/driver"},
	CommandDriverSet: {Method: MethodPost, Path: "/driver", Body: driverBody},
	CommandVolume:    {Method: MethodPost, Path: "/volume", Body: volumeBody},
	CommandTrigger:   {Method: MethodPost, Path: "/trigger", Body: nameBody},
	CommandPreview:   {Method: MethodPost, Path: "/preview", Body: nameBody},
	CommandUpload:    {Method: MethodPost, Path: "/theme", Body: themeBody},
}

// Lookup returns the dispatch entry for cmd.
func Lookup(cmd Command) (CommandDef, bool) {
	def, ok := catalog[cmd]
	return def, ok
}

// Commands returns all known command names, sorted.
func Commands() []Command {
	out := make([]Command, 0, len(catalog))
	for c := range catalog {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BuildRequest maps a command (and its argument) onto the single HTTP
// request it issues against the configured server. The bearer token is
// attached here so every outgoing request carries it.
func BuildRequest(cfg Config, cmd Command, arg string) (RequestSpec, error) {
	def, ok := Lookup(cmd)
	if !ok {
		return RequestSpec{}, &OpError{
			Op:   "domain.build_request",
			Kind: KindInvalidRequest,
			Err:  fmt.Errorf("%q: %w", cmd, ErrUnknownCommand),
		}
	}

	body := BodySpec{Type: BodyNone}
	if def.Body != nil {
		b, err := def.Body(arg)
		if err != nil {
			return RequestSpec{}, err
		}
		body = b
	}

	base := strings.TrimRight(cfg.Server.BaseURL, "/")
	return RequestSpec{
		Name:   string(cmd),
		Method: def.Method,
		URL:    base + def.Path,
		Headers: Headers{
			"Authorization": "Bearer " + cfg.Server.Token,
		},
		Body: body,
	}, nil
}

func nameBody(arg string) (BodySpec, error) {
	name := strings.TrimSpace(arg)
	if name == "" {
		return BodySpec{}, &OpError{
			Op:   "domain.build_request",
			Kind: KindInvalidRequest,
			Err:  fmt.Errorf("sound name: %w", ErrMissingArg),
		}
	}
	return BodySpec{Type: BodyJSON, JSON: map[string]any{"name": name}}, nil
}

func volumeBody(arg string) (BodySpec, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return BodySpec{}, &OpError{
			Op:   "domain.build_request",
			Kind: KindInvalidRequest,
			Err:  fmt.Errorf("volume %q is not a number: %w", arg, ErrInvalidRequest),
		}
	}
	return BodySpec{Type: BodyJSON, JSON: map[string]any{"value": v}}, nil
}

func driverBody(arg string) (BodySpec, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return BodySpec{}, &OpError{
			Op:   "domain.build_request",
			Kind: KindInvalidRequest,
			Err:  fmt.Errorf("driver id %q is not an integer: %w", arg, ErrInvalidRequest),
		}
	}
	return BodySpec{Type: BodyJSON, JSON: map[string]any{"id": id}}, nil
}

// themeBody receives the raw theme document; reading the file is the
// caller's concern. The bytes are sent verbatim.
func themeBody(arg string) (BodySpec, error) {
	if len(arg) == 0 {
		return BodySpec{}, &OpError{
			Op:   "domain.build_request",
			Kind: KindInvalidRequest,
			Err:  fmt.Errorf("theme document: %w", ErrMissingArg),
		}
	}
	return BodySpec{Type: BodyRaw, Raw: arg, ContentType: "application/json"}, nil
}

package rcl

import "strings"

// Arguments holds the parsed middleware-specific section of the process
// arguments. Everything outside the --ros-args ... -- section is left in
// Unparsed for the application.
type Arguments struct {
	Remaps   []RemapRule
	Params   map[string]string
	Unparsed []string
}

// RemapRule replaces a name used by the application with another.
type RemapRule struct {
	From string
	To   string
}

// ParseArgs extracts remap and parameter rules from args, which is
// expected to include the program name in args[0] when taken from
// os.Args. Rules appear between a "--ros-args" token and an optional
// "--" terminator:
//
//	-r from:=to    (or --remap)
//	-p name:=value (or --param)
func ParseArgs(args []string) (*Arguments, error) {
	out := &Arguments{Params: make(map[string]string)}
	inRosArgs := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case !inRosArgs && arg == "--ros-args":
			inRosArgs = true
		case !inRosArgs:
			out.Unparsed = append(out.Unparsed, arg)
		case arg == "--":
			inRosArgs = false
		case arg == "-r" || arg == "--remap":
			if i+1 >= len(args) {
				return nil, newError(RetInvalidRosArgs, "parse_args", "%s expects a rule", arg)
			}
			i++
			rule, err := parseRemapRule(args[i])
			if err != nil {
				return nil, err
			}
			out.Remaps = append(out.Remaps, rule)
		case arg == "-p" || arg == "--param":
			if i+1 >= len(args) {
				return nil, newError(RetInvalidRosArgs, "parse_args", "%s expects a rule", arg)
			}
			i++
			name, value, err := parseParamRule(args[i])
			if err != nil {
				return nil, err
			}
			out.Params[name] = value
		default:
			return nil, newError(RetInvalidRosArgs, "parse_args", "unknown argument %q", arg)
		}
	}
	return out, nil
}

func parseRemapRule(rule string) (RemapRule, error) {
	from, to, found := strings.Cut(rule, ":=")
	if !found || from == "" || to == "" {
		return RemapRule{}, newError(RetInvalidRemapRule, "parse_args", "malformed remap rule %q", rule)
	}
	if !isValidNameToken(from) || !isValidNameToken(to) {
		return RemapRule{}, newError(RetInvalidRemapRule, "parse_args", "invalid name in remap rule %q", rule)
	}
	return RemapRule{From: from, To: to}, nil
}

func parseParamRule(rule string) (name, value string, err error) {
	name, value, found := strings.Cut(rule, ":=")
	if !found || name == "" {
		return "", "", newError(RetInvalidParamRule, "parse_args", "malformed parameter rule %q", rule)
	}
	if !isValidNameToken(name) {
		return "", "", newError(RetInvalidParamRule, "parse_args", "invalid name in parameter rule %q", rule)
	}
	return name, value, nil
}

// isValidNameToken accepts name tokens as they may appear in rules:
// slash-separated segments of alphanumerics and underscores, optionally
// rooted at "/" or "~".
func isValidNameToken(token string) bool {
	rest := strings.TrimPrefix(token, "~")
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return token == "~" || token == "/"
	}
	for _, segment := range strings.Split(rest, "/") {
		if !isValidNameSegment(segment) {
			return false
		}
	}
	return true
}

func isValidNameSegment(segment string) bool {
	if segment == "" {
		return false
	}
	for i, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Remap applies the first matching remap rule to name.
func (a *Arguments) Remap(name string) string {
	for _, rule := range a.Remaps {
		if rule.From == name {
			return rule.To
		}
	}
	return name
}

package templates

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	oerrors "github.com/gradle-util/gur/internal/errors"
)

// Names of the arguments every template receives.
const (
	ArgGroup         = "group"
	ArgArtifact      = "artifact"
	ArgVersion       = "version"
	ArgPackage       = "package"
	ArgPackagePath   = "packagePath"
	ArgTargetJvm     = "targetJvm"
	ArgTargetJvmJava = "targetJvmJava"
	ArgDollar        = "dollar"
)

// StandardArgs are resolved before a template's own arguments, in this order.
var StandardArgs = []ArgSpec{
	{Name: ArgGroup, ArgInfo: ArgInfo{Description: "Project groupId"}},
	{Name: ArgArtifact, ArgInfo: ArgInfo{Description: "Project artifactId"}},
	{Name: ArgVersion, ArgInfo: ArgInfo{Description: "Project version"}},
	{Name: ArgPackage, ArgInfo: ArgInfo{Description: "Project root package. If not specified, use <group>.<artifact> and try to fix the illegal part"}},
}

const targetJvmDescription = "Target JVM version"

// Define is a key=value argument override.
type Define struct {
	Key   string
	Value string
}

// ParseDefine parses "key=value".
func ParseDefine(s string) (Define, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return Define{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid argument %q", s), "", "use the form key=value")
	}
	return Define{Key: key, Value: value}, nil
}

// Candidate is the value an argument resolves to when the operator does not
// supply one. Err is set when there is no usable candidate.
type Candidate struct {
	Value string
	Err   error
}

func (c Candidate) resolve() (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	return c.Value, nil
}

// Prompter decides the final value of one argument.
type Prompter interface {
	Resolve(name, description string, candidate Candidate) (string, error)
}

// NonInteractive accepts the candidate and fails when there is none.
type NonInteractive struct{}

// Resolve implements Prompter.
func (NonInteractive) Resolve(_, _ string, candidate Candidate) (string, error) {
	return candidate.resolve()
}

// Interactive asks the operator for every argument. An empty answer keeps
// the candidate.
type Interactive struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractive creates a Prompter reading answers from in.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewReader(in), out: out}
}

// Resolve implements Prompter.
func (p *Interactive) Resolve(name, description string, candidate Candidate) (string, error) {
	fmt.Fprintf(p.out, "Enter %s", name)
	if description != "" {
		fmt.Fprintf(p.out, " - %s", description)
	}
	if candidate.Err == nil {
		fmt.Fprintf(p.out, " (%s)", candidate.Value)
	}
	fmt.Fprint(p.out, ": ")

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	if answer := strings.TrimRight(line, "\r\n"); answer != "" {
		return answer, nil
	}
	return candidate.resolve()
}

func missing(name string) Candidate {
	return Candidate{Err: oerrors.NewValidationError(
		fmt.Sprintf("missing argument `%s`", name), "", "pass it with -D "+name+"=<value>")}
}

func defaultCandidate(name string, info ArgInfo) Candidate {
	if info.Default == nil {
		return missing(name)
	}
	return Candidate{Value: *info.Default}
}

// ResolveArgs resolves every argument t needs. Defines come first and may
// not repeat a key; undeclared defines stay available to placeholders.
// Derived values (packagePath, targetJvmJava, dollar) are added last.
func ResolveArgs(t *Template, defines []Define, p Prompter) (Args, error) {
	if p == nil {
		p = NonInteractive{}
	}

	supplied := make(Args, len(defines))
	for _, d := range defines {
		if _, dup := supplied[d.Key]; dup {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("duplicate argument: %s", d.Key), "", "pass every argument once")
		}
		supplied[d.Key] = d.Value
	}

	args := make(Args, len(supplied)+len(t.Args)+4)
	for k, v := range supplied {
		args[k] = v
	}

	read := func(name, description string, fallback func() Candidate) error {
		candidate := Candidate{Value: supplied[name]}
		if candidate.Value == "" {
			candidate = fallback()
		}
		value, err := p.Resolve(name, description, candidate)
		if err != nil {
			return err
		}
		args[name] = value
		return nil
	}

	for _, spec := range StandardArgs[:3] {
		if err := read(spec.Name, spec.Description, func() Candidate { return missing(spec.Name) }); err != nil {
			return nil, err
		}
	}

	err := read(ArgPackage, StandardArgs[3].Description, func() Candidate {
		pkg, err := DefaultPackage(args[ArgGroup], args[ArgArtifact])
		return Candidate{Value: pkg, Err: err}
	})
	if err != nil {
		return nil, err
	}
	args[ArgPackagePath] = strings.ReplaceAll(args[ArgPackage], ".", "/")

	if t.TargetJvm != nil {
		info := *t.TargetJvm
		err := read(ArgTargetJvm, targetJvmDescription, func() Candidate { return defaultCandidate(ArgTargetJvm, info) })
		if err != nil {
			return nil, err
		}
		args[ArgTargetJvmJava] = strings.ReplaceAll(args[ArgTargetJvm], ".", "_")
	}

	for _, spec := range t.Args {
		if err := read(spec.Name, spec.Description, func() Candidate { return defaultCandidate(spec.Name, spec.ArgInfo) }); err != nil {
			return nil, err
		}
	}

	args[ArgDollar] = "$"
	return args, nil
}

// ListArgs returns every argument t accepts: the standard ones, targetJvm
// when declared, then the template's own.
func ListArgs(t *Template) []ArgSpec {
	specs := make([]ArgSpec, 0, len(StandardArgs)+1+len(t.Args))
	specs = append(specs, StandardArgs...)
	if t.TargetJvm != nil {
		specs = append(specs, ArgSpec{
			Name:    ArgTargetJvm,
			ArgInfo: ArgInfo{Description: targetJvmDescription, Default: t.TargetJvm.Default},
		})
	}
	return append(specs, t.Args...)
}

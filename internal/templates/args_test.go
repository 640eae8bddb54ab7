package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gradle-util/gur/internal/errors"
)

func strPtr(s string) *string { return &s }

func testTemplate() *Template {
	return &Template{
		Name:      "test",
		TargetJvm: &ArgInfo{Default: strPtr("11")},
		Args: []ArgSpec{
			{Name: "kotlin", ArgInfo: ArgInfo{Description: "Kotlin version", Default: strPtr("1.9.22")}},
			{Name: "gradle", ArgInfo: ArgInfo{Description: "Gradle wrapper version"}},
		},
	}
}

func defines(kv ...string) []Define {
	var ds []Define
	for i := 0; i+1 < len(kv); i += 2 {
		ds = append(ds, Define{Key: kv[i], Value: kv[i+1]})
	}
	return ds
}

func TestParseDefine(t *testing.T) {
	d, err := ParseDefine("group=com.example")
	require.NoError(t, err)
	assert.Equal(t, Define{Key: "group", Value: "com.example"}, d)

	d, err = ParseDefine("expr=a=b")
	require.NoError(t, err)
	assert.Equal(t, "a=b", d.Value)

	for _, bad := range []string{"group", "=value", ""} {
		_, err := ParseDefine(bad)
		assert.ErrorIs(t, err, oerrors.ErrValidation, bad)
	}
}

func TestResolveArgs_DefaultsAndDerivations(t *testing.T) {
	args, err := ResolveArgs(testTemplate(), defines(
		"group", "com.example-1",
		"artifact", "app",
		"version", "1.0.0",
		"gradle", "8.5",
		"targetJvm", "1.8",
	), nil)
	require.NoError(t, err)

	assert.Equal(t, "com.example_1.app", args[ArgPackage])
	assert.Equal(t, "com/example_1/app", args[ArgPackagePath])
	assert.Equal(t, "1.8", args[ArgTargetJvm])
	assert.Equal(t, "1_8", args[ArgTargetJvmJava])
	assert.Equal(t, "1.9.22", args["kotlin"])
	assert.Equal(t, "8.5", args["gradle"])
	assert.Equal(t, "$", args[ArgDollar])
}

func TestResolveArgs_ExplicitPackageSkipsDerivation(t *testing.T) {
	args, err := ResolveArgs(testTemplate(), defines(
		"group", "com.bad group",
		"artifact", "app",
		"version", "1",
		"gradle", "8.5",
		"package", "org.demo",
	), nil)
	require.NoError(t, err)
	assert.Equal(t, "org.demo", args[ArgPackage])
	assert.Equal(t, "org/demo", args[ArgPackagePath])
}

func TestResolveArgs_NoTargetJvm(t *testing.T) {
	tmpl := &Template{Name: "bare"}
	args, err := ResolveArgs(tmpl, defines("group", "g", "artifact", "a", "version", "1"), nil)
	require.NoError(t, err)
	assert.NotContains(t, args, ArgTargetJvm)
	assert.NotContains(t, args, ArgTargetJvmJava)
}

func TestResolveArgs_UndeclaredDefinesKept(t *testing.T) {
	tmpl := &Template{Name: "bare"}
	args, err := ResolveArgs(tmpl, defines("group", "g", "artifact", "a", "version", "1", "extra", "x"), nil)
	require.NoError(t, err)
	assert.Equal(t, "x", args["extra"])
}

func TestResolveArgs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		defines []Define
		wantErr string
	}{
		{
			name:    "duplicate",
			defines: defines("group", "a", "group", "b"),
			wantErr: "duplicate argument: group",
		},
		{
			name:    "missing standard",
			defines: defines("group", "g", "version", "1", "gradle", "8.5"),
			wantErr: "missing argument `artifact`",
		},
		{
			name:    "missing declared without default",
			defines: defines("group", "g", "artifact", "a", "version", "1"),
			wantErr: "missing argument `gradle`",
		},
		{
			name:    "package cannot be derived",
			defines: defines("group", "com.bad group", "artifact", "a", "version", "1", "gradle", "8.5"),
			wantErr: "default package name invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveArgs(testTemplate(), tt.defines, NonInteractive{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.ErrorIs(t, err, oerrors.ErrValidation)
		})
	}
}

func TestResolveArgs_Interactive(t *testing.T) {
	// group, artifact, version, package, targetJvm, kotlin, gradle
	answers := strings.Join([]string{
		"com.example", // group
		"demo",        // artifact
		"",            // version keeps the -D value
		"",            // package keeps the derived default
		"21",          // targetJvm
		"",            // kotlin keeps its default
		"8.5",         // gradle
	}, "\n") + "\n"

	var out bytes.Buffer
	p := NewInteractive(strings.NewReader(answers), &out)

	args, err := ResolveArgs(testTemplate(), defines("version", "2.0.0"), p)
	require.NoError(t, err)

	assert.Equal(t, "com.example", args[ArgGroup])
	assert.Equal(t, "demo", args[ArgArtifact])
	assert.Equal(t, "2.0.0", args[ArgVersion])
	assert.Equal(t, "com.example.demo", args[ArgPackage])
	assert.Equal(t, "21", args[ArgTargetJvm])
	assert.Equal(t, "1.9.22", args["kotlin"])
	assert.Equal(t, "8.5", args["gradle"])

	prompts := out.String()
	assert.Contains(t, prompts, "Enter version - Project version (2.0.0): ")
	assert.Contains(t, prompts, "Enter package")
	assert.Contains(t, prompts, "(com.example.demo)")
	assert.Contains(t, prompts, "Enter kotlin - Kotlin version (1.9.22): ")
}

func TestResolveArgs_InteractiveEmptyAnswerWithoutDefault(t *testing.T) {
	p := NewInteractive(strings.NewReader("\n"), &bytes.Buffer{})
	_, err := ResolveArgs(testTemplate(), nil, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing argument `group`")
}

func TestListArgs(t *testing.T) {
	specs := ListArgs(testTemplate())

	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"group", "artifact", "version", "package", "targetJvm", "kotlin", "gradle"}, names)
	require.NotNil(t, specs[4].Default)
	assert.Equal(t, "11", *specs[4].Default)
}

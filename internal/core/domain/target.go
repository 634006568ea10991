package domain

// TargetKind classifies a build target declared by a manifest.
type TargetKind int

const (
	// TargetKindLibrary is the package's library target.
	TargetKindLibrary TargetKind = iota

	// TargetKindBinary is an executable target.
	TargetKindBinary

	// TargetKindExample is an example program.
	TargetKindExample

	// TargetKindTest is an integration test target.
	TargetKindTest

	// TargetKindBench is a benchmark target.
	TargetKindBench

	// TargetKindCustomBuild is the package's custom build step.
	TargetKindCustomBuild
)

// Target is one buildable artifact declared by a manifest.
type Target struct {
	Name string
	Kind TargetKind
	Path string
}

// IsCustomBuild reports whether the target is a custom build step.
func (t Target) IsCustomBuild() bool {
	return t.Kind == TargetKindCustomBuild
}

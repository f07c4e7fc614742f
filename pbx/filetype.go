package pbx

import (
	"path"
	"strings"
)

const (
	FrameworksPhase  = "PBXFrameworksBuildPhase"
	ResourcesPhase   = "PBXResourcesBuildPhase"
	ShellScriptPhase = "PBXShellScriptBuildPhase"
	SourcesPhase     = "PBXSourcesBuildPhase"
	CopyFilesPhase   = "PBXCopyFilesBuildPhase"
)

// PhaseKinds lists the build phase isa values in consolidation order.
func PhaseKinds() []string {
	return []string{FrameworksPhase, ResourcesPhase, ShellScriptPhase, SourcesPhase, CopyFilesPhase}
}

func IsPhase(isa string) bool {
	switch isa {
	case FrameworksPhase, ResourcesPhase, ShellScriptPhase, SourcesPhase, CopyFilesPhase:
		return true
	}
	return false
}

type fileType struct {
	lastKnown string
	phase     string
}

var fileTypes = map[string]fileType{
	".a":           {"archive.ar", FrameworksPhase},
	".dylib":       {"compiled.mach-o.dylib", FrameworksPhase},
	".tbd":         {"sourcecode.text-based-dylib-definition", FrameworksPhase},
	".framework":   {"wrapper.framework", FrameworksPhase},
	".c":           {"sourcecode.c.c", SourcesPhase},
	".m":           {"sourcecode.c.objc", SourcesPhase},
	".mm":          {"sourcecode.cpp.objcpp", SourcesPhase},
	".cpp":         {"sourcecode.cpp.cpp", SourcesPhase},
	".cc":          {"sourcecode.cpp.cpp", SourcesPhase},
	".swift":       {"sourcecode.swift", SourcesPhase},
	".s":           {"sourcecode.asm", SourcesPhase},
	".h":           {"sourcecode.c.h", ""},
	".hpp":         {"sourcecode.cpp.h", ""},
	".pch":         {"sourcecode.c.h", ""},
	".sh":          {"text.script.sh", ""},
	".xcodeproj":   {"wrapper.pb-project", ""},
	".app":         {"wrapper.application", ""},
	".bundle":      {"wrapper.plug-in", ResourcesPhase},
	".plist":       {"text.plist.xml", ResourcesPhase},
	".strings":     {"text.plist.strings", ResourcesPhase},
	".xib":         {"file.xib", ResourcesPhase},
	".storyboard":  {"file.storyboard", ResourcesPhase},
	".xcassets":    {"folder.assetcatalog", ResourcesPhase},
	".xcconfig":    {"text.xcconfig", ResourcesPhase},
	".xcdatamodel": {"wrapper.xcdatamodel", ResourcesPhase},
	".png":         {"image.png", ResourcesPhase},
	".jpg":         {"image.jpeg", ResourcesPhase},
	".json":        {"text.json", ResourcesPhase},
	".txt":         {"text", ResourcesPhase},
}

// FileType returns the lastKnownFileType for p, or "" when the extension is
// not known.
func FileType(p string) string {
	return fileTypes[strings.ToLower(path.Ext(p))].lastKnown
}

// ImpliedPhase returns the build phase isa a file with the given path is
// added to, or "" for files that are not built.  Unknown extensions are
// resources.
func ImpliedPhase(p string) string {
	ft, ok := fileTypes[strings.ToLower(path.Ext(p))]
	if !ok {
		return ResourcesPhase
	}
	return ft.phase
}

// textual reports whether files of type t carry a fileEncoding.
func textual(t string) bool {
	return strings.HasPrefix(t, "sourcecode.") || strings.HasPrefix(t, "text")
}

package edit

const (
	OtherLinkerFlags        = "OTHER_LDFLAGS"
	OtherCFlags             = "OTHER_CFLAGS"
	HeaderSearchPaths       = "HEADER_SEARCH_PATHS"
	LibrarySearchPaths      = "LIBRARY_SEARCH_PATHS"
	FrameworkSearchPaths    = "FRAMEWORK_SEARCH_PATHS"
	GccEnableCppExceptions  = "GCC_ENABLE_CPP_EXCEPTIONS"
	GccEnableObjcExceptions = "GCC_ENABLE_OBJC_EXCEPTIONS"
)

// AppendSetting appends values to the list setting key of every build
// configuration in the project.  Values already present are appended
// again.
func (e *Editor) AppendSetting(key string, values ...string) {
	if len(values) == 0 {
		return
	}
	for _, bc := range e.g.BuildConfigurations().All() {
		bc.AppendSetting(key, values...)
	}
	e.tracef("append %s %v", key, values)
}

// SetSetting overwrites the scalar setting key in every build
// configuration.
func (e *Editor) SetSetting(key, value string) {
	for _, bc := range e.g.BuildConfigurations().All() {
		bc.SetSetting(key, value)
	}
	e.tracef("set %s = %s", key, value)
}

func (e *Editor) AddOtherLinkerFlags(flags ...string) {
	e.AppendSetting(OtherLinkerFlags, flags...)
}
func (e *Editor) AddOtherCFlags(flags ...string) {
	e.AppendSetting(OtherCFlags, flags...)
}
func (e *Editor) AddHeaderSearchPaths(paths ...string) {
	e.AppendSetting(HeaderSearchPaths, paths...)
}
func (e *Editor) AddLibrarySearchPaths(paths ...string) {
	e.AppendSetting(LibrarySearchPaths, paths...)
}
func (e *Editor) AddFrameworkSearchPaths(paths ...string) {
	e.AppendSetting(FrameworkSearchPaths, paths...)
}

func (e *Editor) GccEnableCppExceptions(v bool) {
	e.SetSetting(GccEnableCppExceptions, yesNo(v))
}

func (e *Editor) GccEnableObjcExceptions(v bool) {
	e.SetSetting(GccEnableObjcExceptions, yesNo(v))
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

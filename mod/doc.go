// Package mod loads modification descriptors: JSON or YAML documents,
// conventionally named *.projmods, that describe a batch of project edits.
//
//	{
//	  "group": "GameKit",
//	  "libs": ["libz.dylib", "libsqlite3.dylib:weak"],
//	  "frameworks": ["Security.framework", "Social.framework:weak"],
//	  "files": ["Plugins/iOS/GameKit.m"],
//	  "folders": ["Plugins/iOS/Resources"],
//	  "excludes": ["^.*\\.meta$"],
//	  "headerpaths": ["iOS/GameCenter"],
//	  "buildSettings": {
//	    "OTHER_LDFLAGS": ["ObjC"],
//	    "GCC_ENABLE_OBJC_EXCEPTIONS": "YES"
//	  }
//	}
//
// Relative files, folders and header paths are resolved against the
// descriptor's Path, the directory it was loaded from.
package mod

// Package edit mutates a project graph: it imports files and folders from
// the host filesystem, broadcasts build settings to every build
// configuration and applies modification descriptors.
//
// Paths given to the editor are host paths.  Relative paths resolve
// against the base directory (WithBaseDir), and references stored in the
// project are made relative to the project root (WithProjectRoot), the
// directory holding the .xcodeproj bundle.
package edit

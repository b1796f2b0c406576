package model

// Shared defaults used by the CLI entrypoint and the TUI.
const (
	DefaultSkin           = "default"
	DefaultLocale         = "en"
	DefaultStartTab       = "fraud-reduction"
	DefaultLogLevel       = "info"
	DefaultExportPath     = "graphfin.html"
	DefaultSnapshotWidth  = 100
	DefaultSnapshotHeight = 48
)

// Minimum terminal size the dashboard lays out for.
const (
	MinWidth  = 60
	MinHeight = 20
)

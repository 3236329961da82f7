package mcp

// WindowInfo is one window record as reported to MCP clients.
type WindowInfo struct {
	Title  string `json:"title"`
	Handle uint64 `json:"handle,omitempty" jsonschema:"Live window handle; only meaningful while this server runs"`
	Top    int    `json:"top"`
	Left   int    `json:"left"`
	Right  int    `json:"right"`
	Bottom int    `json:"bottom"`
}

// DumpWindowsInput is the input for the dump_windows tool.
type DumpWindowsInput struct{}

// DumpWindowsOutput is the output for the dump_windows tool.
type DumpWindowsOutput struct {
	Text    string       `json:"text" jsonschema:"Dump in title@@@bottom@@@left@@@right@@@top line format"`
	Windows []WindowInfo `json:"windows"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// RestoreWindowsInput is the input for the restore_windows tool.
type RestoreWindowsInput struct {
	Text      string `json:"text" jsonschema:"Dump text as produced by dump_windows"`
	ApplySize *bool  `json:"apply_size,omitempty" jsonschema:"Also resize windows to the stored rectangle (default from config)"`
}

// RestoreWindowsOutput is the output for the restore_windows tool.
type RestoreWindowsOutput struct {
	Records  int `json:"records"`
	Restored int `json:"restored"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

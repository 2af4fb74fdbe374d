package config

// Base application details
const AppName = "quill"
const ConfigDirName = "quill"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "quill.log"

// Editing defaults. These could move to NewDefaultConfig(), keeping here for now.
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultHistoryLimit = 1000
const DefaultPageLines = 24
const SystemClipboard = true

package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# TextSum configuration
version: "1.0"

display:
  # Count total characters without whitespace
  exclude_spaces: false
  # Letters shown in the density list before "see more"
  visible_letters: 5
  # Reading speed used for the reading time estimate
  words_per_minute: 200
  # Live view palette: auto, light or dark
  theme: auto
  # Maximum characters accepted by the live editor (0 = unlimited)
  char_limit: 0

output:
  # text, json, markdown, csv or prompt
  default_format: text
  # auto, always or never
  color_mode: auto
  verbose: false

input:
  # plain analyzes the input as-is, log analyzes only log messages
  mode: plain
  # auto, json, logfmt or text (log mode only)
  log_format: auto
  # Refuse inputs larger than this many bytes
  max_bytes: 10485760

watch:
  # Quiet period before a changed file is analyzed again
  debounce: 250ms
`
}

// MinimalSampleConfig returns a compact configuration with the common settings
func MinimalSampleConfig() string {
	return `version: "1.0"
display:
  exclude_spaces: false
  visible_letters: 5
output:
  default_format: text
`
}

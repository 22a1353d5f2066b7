package embedded

import (
	_ "embed"
)

// Embed all prompt data files
//
//go:embed data/core_data/system_prompt.txt
var SystemPromptTxt []byte

//go:embed data/core_data/continuity_instructions.txt
var ContinuityInstructionsTxt []byte

//go:embed data/core_data/output_format_instructions.txt
var OutputFormatInstructionsTxt []byte

//go:embed data/core_data/style_defaults.txt
var StyleDefaultsTxt []byte

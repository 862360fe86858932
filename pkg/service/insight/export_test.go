package insight

// ExtractSections exposes extractSections for testing
var ExtractSections = extractSections

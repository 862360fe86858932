package config

// Test helpers to set unexported flag destinations directly

func (l *Logger) SetForTest(level, format, output string) {
	l.level = level
	l.format = format
	l.output = output
}

func (a *Analysis) SetForTest(lexiconPath, exportDir string) {
	a.lexiconPath = lexiconPath
	a.exportDir = exportDir
}

func (r *Repository) SetForTest(backend string) {
	r.backend = backend
}

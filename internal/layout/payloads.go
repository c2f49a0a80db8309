package layout

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:payloads
var payloadFS embed.FS

const payloadRoot = "payloads"

// payloadPaths lists the registry in application order. Each body lives in
// payloads/<path>.
var payloadPaths = []string{
	"app/main.py",
	"requirements.txt",
	"Dockerfile",
	".github/workflows/ci-cd.yml",
	"render.yaml",
	"pytest.ini",
	"setup.py",
	"main.py",
	"README.md",
}

var payloads = mustLoadPayloads()

// Payloads returns the payload registry in application order.
func Payloads() []FilePayload {
	return append([]FilePayload(nil), payloads...)
}

// Payload returns the literal content registered for path.
func Payload(path string) (string, bool) {
	for _, p := range payloads {
		if p.Path == path {
			return p.Content, true
		}
	}
	return "", false
}

func mustLoadPayloads() []FilePayload {
	out := make([]FilePayload, 0, len(payloadPaths))
	for _, p := range payloadPaths {
		content, err := fs.ReadFile(payloadFS, payloadRoot+"/"+p)
		if err != nil {
			panic(fmt.Sprintf("layout: missing embedded payload %s: %v", p, err))
		}
		out = append(out, FilePayload{Path: p, Content: string(content)})
	}
	return out
}

package content

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embeddedDataFS embed.FS

const (
	projectsFile   = "projects.yaml"
	membersFile    = "members.yaml"
	departmentFile = "department.yaml"
)

type projectsDocument struct {
	Projects []Project `yaml:"projects"`
}

type membersDocument struct {
	Members []Member `yaml:"members"`
}

type departmentDocument struct {
	Department Department `yaml:"department"`
}

// YAMLSource reads projects.yaml, members.yaml and department.yaml from a
// filesystem root.
type YAMLSource struct {
	FS fs.FS
}

// EmbeddedSource returns the content bundled with the binary.
func EmbeddedSource() YAMLSource {
	sub, err := fs.Sub(embeddedDataFS, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded content data: %v", err))
	}
	return YAMLSource{FS: sub}
}

// DirSource returns a source reading from a directory on disk.
func DirSource(dir string) YAMLSource {
	return YAMLSource{FS: os.DirFS(strings.TrimSpace(dir))}
}

// Load decodes the three content documents.
func (s YAMLSource) Load(ctx context.Context) (Snapshot, error) {
	if s.FS == nil {
		return Snapshot{}, fmt.Errorf("yaml source filesystem is required")
	}
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	var projects projectsDocument
	if err := decodeYAMLFile(s.FS, projectsFile, &projects); err != nil {
		return Snapshot{}, err
	}
	var members membersDocument
	if err := decodeYAMLFile(s.FS, membersFile, &members); err != nil {
		return Snapshot{}, err
	}
	var department departmentDocument
	if err := decodeYAMLFile(s.FS, departmentFile, &department); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Projects:   projects.Projects,
		Members:    members.Members,
		Department: department.Department,
	}, nil
}

func decodeYAMLFile(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

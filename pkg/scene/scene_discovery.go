package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/loaders"
)

// ErrUnknownScene is returned when a scene name matches neither a builtin nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// BuiltinGroup is the group name of the scenes compiled into the binary
const BuiltinGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Unique identifier
	Name        string `json:"name"`               // Scene name
	DisplayName string `json:"displayName"`        // UI display name
	Description string `json:"description"`        // Optional description
	Group       string `json:"group"`              // Grouping category
	Type        string `json:"type"`               // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"` // Path to the JSON file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtinScene struct {
	info        SceneInfo
	constructor func(cameraOverrides ...CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Phong, mirror and glass spheres on a ground plane",
		},
		constructor: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "cornell",
			Name:        "Cornell Box",
			Description: "Closed box with a mirror sphere, a glass sphere and a ceiling lamp panel",
		},
		constructor: NewCornellScene,
	},
	{
		info: SceneInfo{
			ID:          "diffuse",
			Name:        "Diffuse Sphere",
			Description: "One white diffuse sphere lit by a point light",
		},
		constructor: NewDiffuseScene,
	},
	{
		info: SceneInfo{
			ID:          "caustic-glass",
			Name:        "Caustic Glass",
			Description: "Nested glass spheres in front of a glowing wall",
		},
		constructor: NewCausticGlassScene,
	},
}

// BuiltinScenes returns metadata for every scene compiled into the binary
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		info := b.info
		info.DisplayName = info.Name
		info.Group = BuiltinGroup
		info.Type = "builtin"
		infos[i] = info
	}
	return infos
}

// NewBuiltinScene constructs the builtin scene with the given id
func NewBuiltinScene(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.constructor(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// LoadScene resolves a scene id from /api/scenes: builtin ids, "file:<name>"
// ids of discovered scene files, or a path to a JSON file.
func LoadScene(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	if s, err := NewBuiltinScene(id, cameraOverrides...); err == nil {
		return s, nil
	}

	if name, ok := strings.CutPrefix(id, "file:"); ok {
		files, err := ListFileScenes()
		if err != nil {
			return nil, err
		}
		for _, info := range files {
			if info.ID == "file:"+name {
				return NewSceneFromFile(info.FilePath, cameraOverrides...)
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	if strings.HasSuffix(id, ".json") {
		return NewSceneFromFile(id, cameraOverrides...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// ListFileScenes scans the scenes directory for JSON scene files
func ListFileScenes() ([]SceneInfo, error) {
	// Try different possible paths for scenes directory
	possiblePaths := []string{"scenes", "../scenes"}
	var scenesDir string

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			scenesDir = path
			break
		}
	}

	if scenesDir == "" {
		return []SceneInfo{}, nil
	}
	return listSceneDir(scenesDir)
}

func listSceneDir(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name, description and group of a JSON scene file.
// Missing fields fall back to values derived from the file name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          "file:" + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Scene Files",
		Type:        "file",
		FilePath:    filePath,
	}

	desc, err := loaders.LoadSceneFile(filePath)
	if err != nil {
		return info, err
	}

	if desc.Name != "" {
		info.Name = desc.Name
		info.DisplayName = desc.Name
	}
	info.Description = desc.Description
	if desc.Group != "" {
		info.Group = desc.Group
	}

	return info, nil
}

// ListAllScenes returns both built-in scenes and scene files, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	files, err := ListFileScenes()
	if err != nil {
		return ScenesResponse{}, fmt.Errorf("failed to list scene files: %w", err)
	}
	return groupScenes(append(BuiltinScenes(), files...)), nil
}

// groupScenes puts the builtin group first and the rest alphabetically
func groupScenes(allScenes []SceneInfo) ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != BuiltinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtInGroup, exists := groupMap[BuiltinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   BuiltinGroup,
			Scenes: builtInGroup,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}

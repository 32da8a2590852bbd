package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const imageDir = "images/"

//go:embed images/*.svg
var imageFS embed.FS

var imageCache sync.Map

// Image returns a Fyne resource for the given image file.
func Image(fileName string) (fyne.Resource, error) {
	return loadResource(imageFS, imageDir+fileName, &imageCache)
}

// MustImage returns a Fyne resource or panics on error.
func MustImage(fileName string) fyne.Resource {
	resource, err := Image(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Tomato is the artwork drawn behind the countdown.
func Tomato() fyne.Resource {
	return MustImage("tomato.svg")
}

// Icon is the application and tray icon.
func Icon() fyne.Resource {
	return MustImage("icon.svg")
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}

package tidefall

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/google/uuid"
)

type AssetId string

// AssetServer owns every mesh and texture in the scene. Handles are
// opaque ids so objects can share geometry without sharing lifetime.
type AssetServer struct {
	meshes   map[AssetId]*Mesh
	textures map[AssetId]*image.RGBA
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App) {
	app.AddResources(NewAssetServer())
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:   make(map[AssetId]*Mesh),
		textures: make(map[AssetId]*image.RGBA),
	}
}

func (server *AssetServer) AddMesh(m *Mesh) AssetId {
	id := makeAssetId()
	server.meshes[id] = m
	return id
}

func (server *AssetServer) Mesh(id AssetId) *Mesh {
	return server.meshes[id]
}

func (server *AssetServer) AddTexture(img *image.RGBA) AssetId {
	id := makeAssetId()
	server.textures[id] = img
	return id
}

func (server *AssetServer) Texture(id AssetId) *image.RGBA {
	return server.textures[id]
}

// LoadTexture reads a PNG from disk and registers it, converting to
// RGBA when the decoder produced another image type.
func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("load texture %s: %w", filename, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode texture %s: %w", filename, err)
	}

	bounds := img.Bounds()
	rgbaImg, ok := img.(*image.RGBA)
	if !ok {
		rgbaImg = image.NewRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				rgbaImg.Set(x, y, img.At(x, y))
			}
		}
	}

	return server.AddTexture(rgbaImg), nil
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

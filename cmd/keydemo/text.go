package main

import (
	"image"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"
)

type Size = image.Point
type Rect = image.Rectangle

const (
	textVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    }`
	textFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    uniform vec4 u_color;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = u_color * texture2D(u_tex, v_texcoord).a;
    }`
)

type textVertex struct {
	position [2]float32
	texcoord [2]float32
}

// TextRenderer draws monospace text from a glyph atlas. Text is laid out in
// cell coordinates: (0,0) is the top-left cell of the target rectangle.
type TextRenderer struct {
	tileSize   Size
	tex        Texture
	program    Program
	aPosition  uint32
	aTexcoord  uint32
	uTransform int32
	uTex       int32
	uColor     int32
	vertices   []textVertex
}

func NewTextRenderer(atlas *Atlas) (*TextRenderer, error) {
	program, err := CreateProgram(textVertexShader, textFragmentShader)
	if err != nil {
		return nil, err
	}
	tex := CreateTexture()
	size := atlas.Image.Bounds().Size()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.ALPHA,
		int32(size.X), int32(size.Y),
		0, gl.ALPHA, gl.UNSIGNED_BYTE,
		gl.Ptr(atlas.Image.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &TextRenderer{
		tileSize:   atlas.TileSize,
		tex:        tex,
		program:    program,
		aPosition:  program.Attrib("a_position"),
		aTexcoord:  program.Attrib("a_texcoord"),
		uTransform: program.Uniform("u_transform"),
		uTex:       program.Uniform("u_tex"),
		uColor:     program.Uniform("u_color"),
		vertices:   make([]textVertex, 0, 6*4096),
	}, nil
}

func (tr *TextRenderer) TileSize() Size {
	return tr.tileSize
}

// Cells returns how many text cells fit into rect.
func (tr *TextRenderer) Cells(rect Rect) Size {
	return Size{
		X: rect.Dx() / tr.tileSize.X,
		Y: rect.Dy() / tr.tileSize.Y,
	}
}

func (tr *TextRenderer) drawRune(x, y int, r rune) {
	if r < 0 || r >= atlasCols*atlasRows {
		r = '?'
	}
	s0 := float32(int(r)%atlasCols) / atlasCols
	t0 := float32(int(r)/atlasCols) / atlasRows
	s1 := s0 + 1.0/atlasCols
	t1 := t0 + 1.0/atlasRows
	x0, x1 := float32(x), float32(x+1)
	y0, y1 := float32(-y), float32(-y-1)
	tr.vertices = append(tr.vertices,
		textVertex{[2]float32{x0, y0}, [2]float32{s0, t0}},
		textVertex{[2]float32{x0, y1}, [2]float32{s0, t1}},
		textVertex{[2]float32{x1, y1}, [2]float32{s1, t1}},
		textVertex{[2]float32{x1, y1}, [2]float32{s1, t1}},
		textVertex{[2]float32{x1, y0}, [2]float32{s1, t0}},
		textVertex{[2]float32{x0, y0}, [2]float32{s0, t0}},
	)
}

// Print queues s at cell (x, y). Runes past maxWidth cells are dropped when
// maxWidth is positive.
func (tr *TextRenderer) Print(x, y int, s string, maxWidth int) {
	col := 0
	for _, r := range s {
		if maxWidth > 0 && col >= maxWidth {
			break
		}
		tr.drawRune(x+col, y, r)
		col++
	}
}

// Flush draws the queued text into rect of a framebuffer of size fb and
// empties the queue.
func (tr *TextRenderer) Flush(fb Size, rect Rect, color mgl.Vec4) {
	if len(tr.vertices) == 0 || fb.X == 0 || fb.Y == 0 {
		tr.vertices = tr.vertices[:0]
		return
	}
	tr.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	tr.tex.Bind()
	gl.Uniform1i(tr.uTex, 0)
	gl.Uniform4fv(tr.uColor, 1, &color[0])

	stride := int32(unsafe.Sizeof(textVertex{}))
	gl.EnableVertexAttribArray(tr.aPosition)
	gl.VertexAttribPointer(tr.aPosition, 2, gl.FLOAT, false, stride,
		gl.Ptr(&tr.vertices[0].position[0]))
	gl.EnableVertexAttribArray(tr.aTexcoord)
	gl.VertexAttribPointer(tr.aTexcoord, 2, gl.FLOAT, false, stride,
		gl.Ptr(&tr.vertices[0].texcoord[0]))

	ux := 2.0 / float32(fb.X)
	uy := 2.0 / float32(fb.Y)
	scale := mgl.Scale3D(ux*float32(tr.tileSize.X), uy*float32(tr.tileSize.Y), 1)
	translate := mgl.Translate3D(-1+ux*float32(rect.Min.X), 1-uy*float32(rect.Min.Y), 0)
	transform := translate.Mul4(scale)
	gl.UniformMatrix4fv(tr.uTransform, 1, false, &transform[0])

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(tr.vertices)))
	gl.Disable(gl.BLEND)
	gl.DisableVertexAttribArray(tr.aPosition)
	gl.DisableVertexAttribArray(tr.aTexcoord)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	tr.vertices = tr.vertices[:0]
}

func (tr *TextRenderer) Close() {
	tr.program.Close()
	tr.tex.Close()
}

package main

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

type Texture struct {
	tex uint32
}

func CreateTexture() Texture {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return Texture{tex}
}

func (t Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
}

func (t *Texture) Close() {
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
}

func infoLog(length int32, get func(int32, *int32, *uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := make([]uint8, length)
	var n int32
	get(length, &n, &buf[0])
	return string(buf[:n])
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := infoLog(length, func(n int32, got *int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, n, got, buf)
		})
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader compilation failed: %s", log)
	}
	return shader, nil
}

// Program is a linked vertex + fragment shader pair.
type Program struct {
	program uint32
}

func CreateProgram(vertexShader, fragmentShader string) (Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return Program{}, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		return Program{}, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := infoLog(length, func(n int32, got *int32, buf *uint8) {
			gl.GetProgramInfoLog(program, n, got, buf)
		})
		gl.DeleteProgram(program)
		return Program{}, fmt.Errorf("program link failed: %s", log)
	}
	return Program{program}, nil
}

func (p Program) Attrib(name string) uint32 {
	return uint32(gl.GetAttribLocation(p.program, gl.Str(name+"\x00")))
}

func (p Program) Uniform(name string) int32 {
	return gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
}

func (p Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Close() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

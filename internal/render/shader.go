package render

import (
	"image/color"

	"aviator/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadLitShader returns the flat-shaded hemisphere + directional light shader with
// linear fog. Same vertex attributes as raylib meshes: vertexPosition, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	// Face normals come from screen-space derivatives, which gives the low-poly look
	// regardless of how the mesh shares vertices.
	litFS = `#version 330
in vec3 fragPosition;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform vec3 hemiSky;
uniform vec3 hemiGround;
uniform float hemiIntensity;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;
out vec4 finalColor;
void main() {
  vec3 N = normalize(cross(dFdx(fragPosition), dFdy(fragPosition)));
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 hemi = mix(hemiGround, hemiSky, 0.5 * N.y + 0.5) * hemiIntensity;
  vec3 lit = colDiffuse.rgb * (hemi + lightColor * lightIntensity * NdotL);
  float dist = length(viewPos - fragPosition);
  float fog = clamp((dist - fogNear) / max(fogFar - fogNear, 0.0001), 0.0, 1.0);
  finalColor = vec4(mix(lit, fogColor, fog), colDiffuse.a);
}
`
)

// uniforms caches shader locations; -1 means the shader does not use it.
type uniforms struct {
	viewPos, lightDir, lightColor, lightIntensity int32
	hemiSky, hemiGround, hemiIntensity             int32
	fogColor, fogNear, fogFar                      int32
}

func locate(shader rl.Shader) uniforms {
	loc := func(name string) int32 { return rl.GetShaderLocation(shader, name) }
	return uniforms{
		viewPos:        loc("viewPos"),
		lightDir:       loc("lightDir"),
		lightColor:     loc("lightColor"),
		lightIntensity: loc("lightIntensity"),
		hemiSky:        loc("hemiSky"),
		hemiGround:     loc("hemiGround"),
		hemiIntensity:  loc("hemiIntensity"),
		fogColor:       loc("fogColor"),
		fogNear:        loc("fogNear"),
		fogFar:         loc("fogFar"),
	}
}

func rgb(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func setVec3(shader rl.Shader, loc int32, v []float32) {
	if loc >= 0 {
		rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, 1)
	}
}

func setFloat(shader rl.Shader, loc int32, f float32) {
	if loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{f}, rl.ShaderUniformFloat)
	}
}

// setFrameUniforms uploads camera, lights and fog once per frame (cgo-safe: local slices).
func setFrameUniforms(shader rl.Shader, u uniforms, s *scene.Scene) {
	if !rl.IsShaderValid(shader) {
		return
	}
	cam := s.Camera.Position
	setVec3(shader, u.viewPos, []float32{cam[0], cam[1], cam[2]})
	dir := s.Sun.Direction()
	setVec3(shader, u.lightDir, []float32{dir[0], dir[1], dir[2]})
	setVec3(shader, u.lightColor, rgb(s.Sun.Color))
	setFloat(shader, u.lightIntensity, s.Sun.Intensity)
	setVec3(shader, u.hemiSky, rgb(s.Hemisphere.Sky))
	setVec3(shader, u.hemiGround, rgb(s.Hemisphere.Ground))
	setFloat(shader, u.hemiIntensity, s.Hemisphere.Intensity)
	setVec3(shader, u.fogColor, rgb(s.Fog.Color))
	setFloat(shader, u.fogNear, s.Fog.Near)
	setFloat(shader, u.fogFar, s.Fog.Far)
}

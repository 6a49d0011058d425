package primitives

import (
	"gallery/internal/lighting"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadLitShader returns the untextured gallery shader: ambient, one directional light and three
// spot cones. Same vertex attributes as raylib meshes.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

// loadLitTexturedShader is loadLitShader with the albedo sampled from MapAlbedo.
func loadLitTexturedShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litTexturedFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matNormal) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litHeader = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 dirColor;
uniform vec3 dirToLight;
uniform vec3 spotPos[3];
uniform vec3 spotDir[3];
uniform vec3 spotColor[3];
uniform float spotOuterCos[3];
uniform float spotInnerCos[3];
uniform float specularStrength;
out vec4 finalColor;
`
	litBody = `
vec3 shade(vec3 base, vec3 N, vec3 V, vec3 L, vec3 color) {
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), 32.0) * specularStrength;
  return (base * NdotL + vec3(spec) * step(0.0001, NdotL)) * color;
}
vec3 light(vec3 base) {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 c = ambient * base;
  c += shade(base, N, V, normalize(dirToLight), dirColor);
  for (int i = 0; i < 3; i++) {
    vec3 toLight = spotPos[i] - fragPosition;
    vec3 L = normalize(toLight);
    float cosA = dot(-L, normalize(spotDir[i]));
    float cone = smoothstep(spotOuterCos[i], spotInnerCos[i], cosA);
    c += shade(base, N, V, L, spotColor[i]) * cone;
  }
  return c;
}
`
	litFS = litHeader + litBody + `
void main() {
  finalColor = vec4(light(colDiffuse.rgb), colDiffuse.a);
}
`
	litTexturedFS = litHeader + `uniform sampler2D texture0;
` + litBody + `
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  finalColor = vec4(light(tint.rgb), tint.a);
}
`
)

// rigUniforms is the shader view of the light rig. Hidden lights contribute zero color.
type rigUniforms struct {
	ambient    [3]float32
	dirColor   [3]float32
	dirToLight [3]float32
	spotPos    [9]float32
	spotDir    [9]float32
	spotColor  [9]float32
	outerCos   [3]float32
	innerCos   [3]float32
}

func scaledColor(l lighting.Light) [3]float32 {
	if !l.Visible {
		return [3]float32{}
	}
	return [3]float32{
		float32(l.Color.R) / 255 * l.Intensity,
		float32(l.Color.G) / 255 * l.Intensity,
		float32(l.Color.B) / 255 * l.Intensity,
	}
}

func makeRigUniforms(lights [lighting.Count]lighting.Light) rigUniforms {
	var u rigUniforms
	u.ambient = scaledColor(lights[lighting.Ambient])
	dir := lights[lighting.Directional]
	u.dirColor = scaledColor(dir)
	toLight := rl.Vector3Negate(dir.Direction())
	u.dirToLight = [3]float32{toLight.X, toLight.Y, toLight.Z}
	for i := range 3 {
		s := lights[lighting.SpotLeft+i]
		d := s.Direction()
		copy(u.spotPos[i*3:], []float32{s.Position.X, s.Position.Y, s.Position.Z})
		copy(u.spotDir[i*3:], []float32{d.X, d.Y, d.Z})
		c := scaledColor(s)
		copy(u.spotColor[i*3:], c[:])
		u.outerCos[i] = math32.Cos(s.Angle)
		u.innerCos[i] = math32.Cos(s.Angle * (1 - s.Penumbra))
	}
	return u
}

func setVec3(shader rl.Shader, name string, v []float32, count int32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, count)
	}
}

func setFloats(shader rl.Shader, name string, v []float32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformFloat, int32(len(v)))
	}
}

// apply uploads the rig and the camera position to shader.
func (u *rigUniforms) apply(shader rl.Shader, viewPos rl.Vector3) {
	if !rl.IsShaderValid(shader) {
		return
	}
	setVec3(shader, "viewPos", []float32{viewPos.X, viewPos.Y, viewPos.Z}, 1)
	setVec3(shader, "ambient", u.ambient[:], 1)
	setVec3(shader, "dirColor", u.dirColor[:], 1)
	setVec3(shader, "dirToLight", u.dirToLight[:], 1)
	setVec3(shader, "spotPos", u.spotPos[:], 3)
	setVec3(shader, "spotDir", u.spotDir[:], 3)
	setVec3(shader, "spotColor", u.spotColor[:], 3)
	setFloats(shader, "spotOuterCos", u.outerCos[:])
	setFloats(shader, "spotInnerCos", u.innerCos[:])
}

// specular maps a material's roughness and metalness to a highlight strength.
func specular(roughness, metalness float32) float32 {
	return rl.Clamp((1-roughness)*0.5+metalness*0.25, 0, 1)
}

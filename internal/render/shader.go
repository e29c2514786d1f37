package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"cube-tweaks/internal/scene"
)

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: albedo (texture0 * colDiffuse) lit by one ambient, one directional and one point
	// light with inverse-square falloff. flatShading replaces the interpolated normal with the
	// face normal from screen-space derivatives.
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 ambientColor;
uniform vec3 dirDirection;
uniform vec3 dirColor;
uniform vec3 pointPosition;
uniform vec3 pointColor;
uniform float flatShading;
out vec4 finalColor;
const float RECIPROCAL_PI = 0.3183098861837907;
void main() {
  vec4 albedo = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  if (flatShading > 0.5) {
    N = normalize(cross(dFdx(fragPosition), dFdy(fragPosition)));
  }
  vec3 irradiance = ambientColor;
  irradiance += max(dot(N, -dirDirection), 0.0) * dirColor;
  vec3 toPoint = pointPosition - fragPosition;
  float d2 = max(dot(toPoint, toPoint), 0.0001);
  irradiance += max(dot(N, normalize(toPoint)), 0.0) * pointColor / d2;
  finalColor = vec4(albedo.rgb * irradiance * RECIPROCAL_PI, albedo.a);
}
`
)

// litShader caches uniform locations of the lit shader.
type litShader struct {
	shader        rl.Shader
	ambientColor  int32
	dirDirection  int32
	dirColor      int32
	pointPosition int32
	pointColor    int32
	flatShading   int32
}

func loadLitShader() litShader {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	return litShader{
		shader:        sh,
		ambientColor:  rl.GetShaderLocation(sh, "ambientColor"),
		dirDirection:  rl.GetShaderLocation(sh, "dirDirection"),
		dirColor:      rl.GetShaderLocation(sh, "dirColor"),
		pointPosition: rl.GetShaderLocation(sh, "pointPosition"),
		pointColor:    rl.GetShaderLocation(sh, "pointColor"),
		flatShading:   rl.GetShaderLocation(sh, "flatShading"),
	}
}

func (s litShader) valid() bool {
	return rl.IsShaderValid(s.shader)
}

// radiance returns the light color scaled by intensity, as the shader expects it.
func radiance(c color.RGBA, intensity float32) [3]float32 {
	return [3]float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
	}
}

// setLights uploads the scene lights. Only the first light of each kind is used.
func (s litShader) setLights(lights []*scene.Light) {
	var amb, dirCol, pointCol, dirDir, pointPos [3]float32
	dirDir = [3]float32{0, -1, 0}
	seen := map[scene.LightKind]bool{}
	for _, l := range lights {
		if seen[l.Kind] {
			continue
		}
		seen[l.Kind] = true
		switch l.Kind {
		case scene.AmbientLight:
			amb = radiance(l.Color, l.Intensity)
		case scene.DirectionalLight:
			dirCol = radiance(l.Color, l.Intensity)
			dirDir = vec3(l.Direction())
		case scene.PointLight:
			pointCol = radiance(l.Color, l.Intensity)
			pointPos = vec3(l.Position)
		}
	}
	set3 := func(loc int32, v [3]float32) {
		if loc >= 0 {
			rl.SetShaderValueV(s.shader, loc, v[:], rl.ShaderUniformVec3, 1)
		}
	}
	set3(s.ambientColor, amb)
	set3(s.dirColor, dirCol)
	set3(s.dirDirection, dirDir)
	set3(s.pointColor, pointCol)
	set3(s.pointPosition, pointPos)
}

func (s litShader) setFlat(flat bool) {
	if s.flatShading < 0 {
		return
	}
	v := float32(0)
	if flat {
		v = 1
	}
	rl.SetShaderValue(s.shader, s.flatShading, []float32{v}, rl.ShaderUniformFloat)
}

func vec3(v mgl32.Vec3) [3]float32 {
	return [3]float32{v[0], v[1], v[2]}
}

func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func toColor(c color.RGBA, opacity float32) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, uint8(mgl32.Clamp(opacity, 0, 1)*255))
}

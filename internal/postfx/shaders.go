package postfx

import (
	"fmt"
	"strings"
)

const shaderHeader = "#version 330\n"

// Same attributes and outputs as raylib's built-in vertex stage; every pass
// below reads fragTexCoord and samples texture0.
const vertexBody = `
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;

void main() {
	fragTexCoord = vertexTexCoord;
	fragColor = vertexColor;
	gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const brightPassBody = `
in vec2 fragTexCoord;
in vec4 fragColor;
out vec4 finalColor;

uniform sampler2D texture0;
uniform float threshold;
uniform float smoothWidth;

void main() {
	vec4 texel = texture(texture0, fragTexCoord);
	float l = dot(texel.rgb, vec3(0.299, 0.587, 0.114));
	float alpha = smoothstep(threshold, threshold + smoothWidth, l);
	finalColor = mix(vec4(0.0), texel, alpha);
}
`

const blurBody = `
in vec2 fragTexCoord;
in vec4 fragColor;
out vec4 finalColor;

uniform sampler2D texture0;
uniform vec2 texelSize;
uniform vec2 direction;

void main() {
	vec3 sum = texture(texture0, fragTexCoord).rgb * weights[0];
	for (int i = 1; i < KERNEL_RADIUS; i++) {
		vec2 offset = direction * texelSize * float(i);
		sum += texture(texture0, fragTexCoord + offset).rgb * weights[i];
		sum += texture(texture0, fragTexCoord - offset).rgb * weights[i];
	}
	finalColor = vec4(sum, 1.0);
}
`

const compositeBody = `
in vec2 fragTexCoord;
in vec4 fragColor;
out vec4 finalColor;

uniform sampler2D texture0;
uniform float bloomStrength;
uniform float bloomFactors[MIP_LEVELS];
uniform float exposure;

const mat3 acesInput = mat3(
	vec3(0.59719, 0.07600, 0.02840),
	vec3(0.35458, 0.90834, 0.13383),
	vec3(0.04823, 0.01566, 0.83777));
const mat3 acesOutput = mat3(
	vec3(1.60475, -0.10208, -0.00327),
	vec3(-0.53108, 1.10813, -0.07276),
	vec3(-0.07367, -0.00605, 1.07602));

vec3 rrtAndODTFit(vec3 v) {
	vec3 a = v * (v + 0.0245786) - 0.000090537;
	vec3 b = v * (0.983729 * v + 0.4329510) + 0.238081;
	return a / b;
}

vec3 acesFilmic(vec3 color) {
	color *= exposure / 0.6;
	color = acesInput * color;
	color = rrtAndODTFit(color);
	color = acesOutput * color;
	return clamp(color, 0.0, 1.0);
}

void main() {
	vec3 scene = texture(texture0, fragTexCoord).rgb;
	vec3 bloom = SAMPLE_MIPS;
	finalColor = vec4(acesFilmic(scene + bloomStrength * bloom), 1.0);
}
`

func VertexShader() string {
	return shaderHeader + vertexBody
}

func BrightPassShader() string {
	return shaderHeader + brightPassBody
}

// BlurShader builds a separable Gaussian blur with its weights baked in.
func BlurShader(radius int) string {
	weights := GaussianKernel(radius)

	var sb strings.Builder
	sb.WriteString(shaderHeader)
	sb.WriteString(fmt.Sprintf("#define KERNEL_RADIUS %d\n", len(weights)))

	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = fmt.Sprintf("%.8f", w)
	}
	sb.WriteString(fmt.Sprintf("const float weights[KERNEL_RADIUS] = float[](%s);\n", strings.Join(parts, ", ")))
	sb.WriteString(blurBody)
	return sb.String()
}

// MipSamplerName is the uniform name of the blurred mip at level.
func MipSamplerName(level int) string {
	return fmt.Sprintf("mip%d", level)
}

func CompositeShader() string {
	var sb strings.Builder
	sb.WriteString(shaderHeader)
	sb.WriteString(fmt.Sprintf("#define MIP_LEVELS %d\n", MipLevels))

	terms := make([]string, MipLevels)
	for i := 0; i < MipLevels; i++ {
		sb.WriteString(fmt.Sprintf("uniform sampler2D %s;\n", MipSamplerName(i)))
		terms[i] = fmt.Sprintf("bloomFactors[%d] * texture(%s, fragTexCoord).rgb", i, MipSamplerName(i))
	}

	body := strings.Replace(compositeBody, "SAMPLE_MIPS", strings.Join(terms, "\n\t\t+ "), 1)
	sb.WriteString(body)
	return sb.String()
}

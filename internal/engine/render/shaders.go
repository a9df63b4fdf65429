package render

// treeVertexShader places each vertex with the per-instance 3x4 transform
// (three vec4 rows) and derives a small per-instance tint from the level
// seed so siblings do not look identical.
const treeVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aRow0;
layout (location = 3) in vec4 aRow1;
layout (location = 4) in vec4 aRow2;

uniform mat4 uViewProj;
uniform vec4 uSeed;

out vec3 vNormal;
out float vTint;

void main() {
    vec4 p = vec4(aPos, 1.0);
    vec3 worldPos = vec3(dot(aRow0, p), dot(aRow1, p), dot(aRow2, p));

    vec4 n = vec4(aNormal, 0.0);
    vNormal = normalize(vec3(dot(aRow0, n), dot(aRow1, n), dot(aRow2, n)));

    float h = fract(sin(float(gl_InstanceID) * 12.9898 + uSeed.x * 78.233) * 43758.5453);
    vTint = 0.85 + 0.3 * h;

    gl_Position = uViewProj * vec4(worldPos, 1.0);
}
` + "\x00"

// treeFragmentShader shades with a single directional light plus a flat
// ambient term.
const treeFragmentShader = `
#version 410 core

in vec3 vNormal;
in float vTint;

uniform vec3 uColor;
uniform vec3 uLightDir;

out vec4 fragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, normalize(uLightDir)), 0.0);
    vec3 color = uColor * vTint * (0.35 + 0.65 * diffuse);
    fragColor = vec4(color, 1.0);
}
` + "\x00"

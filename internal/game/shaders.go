package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Full-screen vertex shader: the quad is already in clip space.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Planet fragment shader: raymarches the three-planet SDF scene per pixel.
// Mirrors internal/scene; keep the two in step.
const planetFragSrc = `#version 410 core

uniform vec2 uResolution;
uniform float uTime;
uniform vec2 uMouse;
uniform float uClickTime; // -1 = no click explosion

out vec4 FragColor;

const float PI = 3.14159265359;
const int MAX_STEPS = 100;
const float HIT_EPS = 0.001;
const float MAX_DIST = 50.0;
const float NORMAL_EPS = 0.001;
const float BURST_DURATION = 3.0;
const float STATIC_RADIUS = 0.4;

const vec3 LEFT_CENTER = vec3(-5.0, 1.0, -2.0);
const vec3 RIGHT_CENTER = vec3(-4.0, -4.0, -7.0);

// Per-frame values, set once at the top of main().
float gProximity;
float gIntensity;

float hash2(vec2 co) {
    return fract(sin(dot(co, vec2(12.9898, 78.233))) * 43758.5453);
}

float valueNoise(vec3 p) {
    vec3 i = floor(p);
    vec4 a = dot(i, vec3(1.0, 57.0, 21.0)) + vec4(0.0, 57.0, 21.0, 78.0);
    vec3 f = cos((p - i) * PI) * -0.5 + 0.5;
    a = mix(sin(cos(a) * a), sin(cos(1.0 + a) * (1.0 + a)), f.x);
    a.xy = mix(a.xz, a.yw, f.y);
    return mix(a.x, a.y, f.z);
}

float pointerProximity() {
    vec2 center = uResolution * 0.5;
    float radius = length(center);
    if (radius == 0.0) {
        return 0.0;
    }
    return 1.0 - clamp(distance(uMouse, center) / radius, 0.0, 1.0);
}

vec3 spin(vec3 p, float angle) {
    float s = sin(angle);
    float c = cos(angle);
    return vec3(p.x, c * p.y + s * p.z, c * p.z - s * p.y);
}

float mainPlanet(vec3 p) {
    vec3 pr = spin(p, uTime * 0.3);
    float r = length(pr);
    float d = r - 1.0;
    if (gIntensity > 0.0) {
        d += valueNoise(pr * 10.0 + uTime * 2.0) * 0.9 * gIntensity;
        d += sin(30.0 * r + uTime * 5.0) * pow(gIntensity, 5.0) * 1.4;
    }
    return d;
}

float staticPlanet(vec3 p, vec3 center) {
    float d = length(p - center) - STATIC_RADIUS;
    if (gIntensity > 0.0) {
        d += valueNoise(p * 10.0 + uTime * 2.0) * 0.3 * gIntensity;
        d += sin(30.0 * length(p) + uTime) * gIntensity * gIntensity * 0.1;
    }
    return d;
}

float sceneDistance(vec3 p) {
    return min(mainPlanet(p), min(staticPlanet(p, LEFT_CENTER), staticPlanet(p, RIGHT_CENTER)));
}

vec3 estimateNormal(vec3 p) {
    vec2 e = vec2(NORMAL_EPS, 0.0);
    return normalize(vec3(
        sceneDistance(p + e.xyy) - sceneDistance(p - e.xyy),
        sceneDistance(p + e.yxy) - sceneDistance(p - e.yxy),
        sceneDistance(p + e.yyx) - sceneDistance(p - e.yyx)
    ));
}

float marchRay(vec3 ro, vec3 rd) {
    float t = 0.0;
    for (int i = 0; i < MAX_STEPS; i++) {
        float d = sceneDistance(ro + rd * t);
        if (d < HIT_EPS || t > MAX_DIST) {
            break;
        }
        t += d;
    }
    return t;
}

vec3 shadeBurst(vec3 rd, float progress) {
    float particles = hash2(rd.xy * 100.0 + uTime) * (1.0 - progress);
    float wave = smoothstep(0.3, 0.0, abs(length(rd.xy) - progress * 2.0));
    vec3 base = mix(vec3(1.0, 0.3, 0.1), vec3(0.8, 0.1, 0.8), progress);
    return base * (particles + wave * 2.0);
}

vec3 shadeStatic(vec3 p, vec3 center, vec3 light, vec3 base) {
    vec3 n = normalize(p - center);
    float diff = max(dot(n, normalize(light)), 0.0);
    return base * (diff + 0.3) + vec3(0.8, 0.5, 0.1) * gIntensity * 0.1;
}

vec3 shadeMain(vec3 p) {
    vec3 n = estimateNormal(p);
    float diff = max(dot(n, normalize(vec3(0.8, 0.6, 0.2))), 0.0);
    vec3 tint = mix(vec3(0.1, 0.3, 0.8), vec3(0.8, 0.4, 0.1), gIntensity);
    float g = max(1.0 - abs(length(p) - 1.0), 0.0);
    float glow = g * g * gIntensity * 5.0;
    return tint * (diff + 0.3) + vec3(1.0, 0.7, 0.3) * glow;
}

vec3 starfield(vec3 rd) {
    float stars = step(0.995, hash2(rd.xy * 100.0));
    return mix(vec3(0.02, 0.03, 0.05), vec3(0.8, 0.9, 1.0), stars);
}

vec3 shade(vec3 ro, vec3 rd, bool burst, float progress) {
    if (burst) {
        return shadeBurst(rd, progress);
    }
    float t = marchRay(ro, rd);
    if (t >= MAX_DIST) {
        return starfield(rd);
    }
    vec3 p = ro + rd * t;
    if (length(p - LEFT_CENTER) - STATIC_RADIUS < 0.01) {
        return shadeStatic(p, LEFT_CENTER, vec3(0.8, 0.6, 0.1), vec3(0.5));
    }
    if (length(p - RIGHT_CENTER) - STATIC_RADIUS < 0.01) {
        return shadeStatic(p, RIGHT_CENTER, vec3(0.8, 0.6, 0.2), vec3(0.4, 0.7, 0.7));
    }
    return shadeMain(p);
}

void main() {
    gProximity = pointerProximity();
    gIntensity = gProximity * gProximity * gProximity;

    float elapsed = uTime - uClickTime;
    bool burst = uClickTime >= 0.0 && elapsed >= 0.0 && elapsed <= BURST_DURATION;
    float progress = burst ? clamp(elapsed / BURST_DURATION, 0.0, 1.0) : 0.0;

    float shortSide = min(uResolution.x, uResolution.y);
    vec2 uv = shortSide > 0.0 ? (2.0 * gl_FragCoord.xy - uResolution) / shortSide : vec2(0.0);
    vec3 ro = vec3(0.0, 0.0, 5.0);
    vec3 rd = normalize(vec3(uv, -1.0));

    vec3 color = shade(ro, rd, burst, progress);
    if (!burst) {
        color += vec3(0.8, 0.5, 0.2) * gProximity * 0.3 * (1.0 - dot(uv, uv));
    }
    FragColor = vec4(color, 1.0);
}
` + "\x00"

// compileShader compiles one stage of the named program.
func compileShader(program, source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, infoLogError(program, shaderKind(shaderType)+" shader", buf)
	}
	return shader, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}

// linkProgram builds the named program from a vertex and a fragment stage.
// Stage objects are released whether or not linking succeeds.
func linkProgram(name, vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(name, vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(name, fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	for _, stage := range []uint32{vs, fs} {
		gl.AttachShader(program, stage)
	}
	gl.LinkProgram(program)
	for _, stage := range []uint32{vs, fs} {
		gl.DetachShader(program, stage)
		gl.DeleteShader(stage)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return program, nil
	}
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	buf := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
	gl.DeleteProgram(program)
	return 0, infoLogError(name, "link", buf)
}

// infoLogError turns a NUL-padded GL info log into an error naming the
// program and the step that failed.
func infoLogError(program, step, infoLog string) error {
	msg := strings.TrimSpace(strings.TrimRight(infoLog, "\x00"))
	if msg == "" {
		msg = "no info log"
	}
	return fmt.Errorf("%s program: %s: %s", program, step, msg)
}

package tracer

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/accel"
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
	"github.com/kestrelrender/pathtracer/pkg/pdf"
)

const (
	rrMinBounces = 6
	rrMinQ       = 0.03
	tMinEpsilon  = 0.001
)

// rayColor traces a single camera ray through up to maxDepth bounces,
// mixing light-set and material-BRDF sampling via a 50/50 PDFMixture and
// terminating early via Russian roulette from bounce index 6 on, with a
// termination probability of max(0.03, 1 - luminance(throughput)). NaN in a scattering PDF or evaluated BRDF
// drops that sample's contribution (it is detected with x != x) but does
// not stop the path; it simply continues tracing from the sampled
// direction with an unmodified throughput.
func (w *World) rayColor(ray core.Ray, maxDepth int, stack *accel.Stack, sampler *core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	chance := 0.0
	if len(w.lights) > 0 {
		chance = 0.5
	}

	for bounce := 0; bounce < maxDepth; bounce++ {
		hit, ok := w.bvh.Hit(ray, tMinEpsilon, math.Inf(1), stack)
		if !ok {
			return throughput.MultiplyVec(w.config.Background.Value(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			emitted := hit.Material.Emit(hit.U, hit.V, hit.P, hit.FrontFace)
			return throughput.MultiplyVec(emitted)
		}

		switch scatter.Kind {
		case material.Specular:
			throughput = throughput.MultiplyVec(scatter.Attenuation)
			ray = scatter.SpecularRay

		case material.Scatter:
			lightPDF := pdf.NewLightSet(hit.P, w.lights)
			mixture := pdf.NewMixture(lightPDF, scatter.PDF, chance)
			direction := mixture.Sample(sampler)
			pdfVal := mixture.Value(direction)
			materialPdfVal := scatter.PDF.Value(direction)
			multiplier := materialPdfVal / pdfVal
			if !math.IsNaN(multiplier) && !math.IsInf(multiplier, 0) {
				throughput = throughput.MultiplyVec(scatter.Attenuation).Multiply(multiplier)
			}
			ray = core.NewRay(hit.P, direction)

		case material.SpecularDiffuse:
			lightPDF := pdf.NewLightSet(hit.P, w.lights)
			mixture := pdf.NewMixture(lightPDF, scatter.PDF, chance)
			direction := mixture.Sample(sampler)
			eval := scatter.EvalBRDF(direction)
			pdfVal := mixture.Value(direction)
			if !eval.HasNaN() && !math.IsNaN(pdfVal) && pdfVal > 0 {
				throughput = throughput.MultiplyVec(eval.Divide(pdfVal))
			}
			ray = core.NewRay(hit.P, direction)
		}

		if bounce >= rrMinBounces {
			q := math.Max(rrMinQ, 1-throughput.Luminance())
			if sampler.Get1D() < q {
				return core.Vec3{}
			}
			throughput = throughput.Divide(1 - q)
		}
	}

	return core.Vec3{}
}

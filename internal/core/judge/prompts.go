package judge

// Compiled-in fallbacks for when the TOML config carries no prompt overrides.
// Placeholders: evidence prompt takes (claim, evidence block), grounded prompt
// takes (claim).

const defaultEvidencePrompt = `You are a rigorous fact-checking system. Assess the accuracy of the claim below using only the evidence provided.

Claim: %s

Evidence:
%s

Respond with ONLY a JSON object, no other text, in exactly this shape:
{
  "verdict": "true" | "false" | "partially_true" | "unverifiable",
  "confidence": 0.0,
  "summary": "one short paragraph justifying the verdict",
  "supporting_evidence": [{"source": "https://...", "quote": "short quote"}],
  "contradicting_evidence": [{"source": "https://...", "quote": "short quote"}]
}

Rules:
- "confidence" is a number between 0.0 and 1.0.
- Sort each evidence item into supporting or contradicting based on its relation to the claim.
- If the evidence is insufficient to decide, use verdict "unverifiable" and say what is missing.`

const defaultGroundedPrompt = `You are a rigorous fact-checking system. Search the web for evidence about the claim below, then assess its accuracy.

Claim: %s

Respond with ONLY a JSON object, no other text, in exactly this shape:
{
  "verdict": "true" | "false" | "partially_true" | "unverifiable",
  "confidence": 0.0,
  "summary": "one short paragraph justifying the verdict",
  "supporting_evidence": [{"source": "https://...", "quote": "short quote"}],
  "contradicting_evidence": [{"source": "https://...", "quote": "short quote"}]
}

Rules:
- "confidence" is a number between 0.0 and 1.0.
- List every source you relied on in the evidence arrays, each with a short quote.
- If you cannot find enough evidence, use verdict "unverifiable" and say what is missing.`

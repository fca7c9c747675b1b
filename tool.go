package opmatrix

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ============================================================
// MCP Tool Interface
// ============================================================

// ToolRequest is one call from an agent: a tool name and its JSON params.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries either a result with its renderings or an error.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall dispatches a single tool request. Failures are reported in
// ToolResponse.Error; it never panics on malformed params.
func HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	// scale is optional, defaults to 1, and may be sent as a number or as
	// one of the n/nn/nnn spellings.
	getScale := func() (Scale, error) {
		v, ok := req.Params["scale"]
		if !ok {
			return Unit, nil
		}
		switch s := v.(type) {
		case float64:
			if s != float64(int(s)) {
				return 0, fmt.Errorf("%w: %v", ErrInvalidScale, s)
			}
			return Scale(int(s)), nil
		case string:
			return ParseScale(s)
		}
		return 0, fmt.Errorf("param scale must be a number or string")
	}
	getOn := func(key, def string) string {
		if s, err := getString(key); err == nil && s != "" {
			return s
		}
		return def
	}
	respond := func(m Matrix) ToolResponse {
		return ToolResponse{Result: m.toJSON(), LaTeX: m.LaTeX(), String: m.String()}
	}

	switch req.Tool {
	case "get_matrix":
		opName, err := getString("operator")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		op, err := ParseOperator(opName)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		scale, err := getScale()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		m, err := Get(op, scale)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(m)

	case "get_glyph":
		name, err := getString("glyph")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		g, err := ParseGlyph(name)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		m, err := GlyphMatrix(g)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(m)

	case "get_pairing":
		opName, err := getString("operator")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		op, err := ParseOperator(opName)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		p, err := Pairing(op)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		out := map[string]string{"x": p[0].String(), "y": p[1].String(), "z": p[2].String()}
		return ToolResponse{Result: out, String: fmt.Sprintf("%s %s %s", p[0], p[1], p[2])}

	case "list_tables":
		tables := Tables()
		out := make([]map[string]interface{}, len(tables))
		strs := make([]string, len(tables))
		for i, t := range tables {
			out[i] = map[string]interface{}{
				"operator": t.Operator.String(),
				"symbol":   t.Operator.Symbol(),
				"scale":    int(t.Scale),
			}
			strs[i] = t.String()
		}
		return ToolResponse{Result: out, String: fmt.Sprint(strs)}

	case "render":
		opName, err := getString("operator")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		scale, err := getScale()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		m, err := Lookup(opName, strconv.Itoa(int(scale)))
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		art := m.Render(getOn("on", "#"), getOn("off", "."))
		return ToolResponse{Result: art, String: art}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// MCPToolSpec returns the JSON schema of every tool HandleToolCall serves.
func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("get_matrix", "Fixed 5x5 indicator matrix for an operator (+ - * / % ^). Optional scale 1|2|3", []string{"operator"}, map[string]string{"operator": "string", "scale": "integer"}),
		ts("get_glyph", "Literal K stroke pattern: leftK, rightK or midK", []string{"glyph"}, map[string]string{"glyph": "string"}),
		ts("get_pairing", "Glyphs recorded for an operator's X, Y and Z lines", []string{"operator"}, map[string]string{"operator": "string"}),
		ts("list_tables", "List every defined (operator, scale) pair", []string{}, map[string]string{}),
		ts("render", "Draw a matrix as text art. Optional on/off cell strings", []string{"operator"}, map[string]string{"operator": "string", "scale": "integer", "on": "string", "off": "string"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

package swaggerkit

// baseSpec documents the public surface; modules may extend it through Register
const baseSpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "aidetect API",
    "description": "Scores text for the probability that it was machine generated"
  },
  "tags": [
    {"name": "Analyze"},
    {"name": "Meta"},
    {"name": "History"},
    {"name": "Stats"}
  ],
  "paths": {
    "/predict": {
      "post": {
        "tags": ["Analyze"],
        "summary": "Score one text",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TextInput"}}}},
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/PredictResult"}}}},
          "503": {"description": "Model not loaded", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/analyze-sentences": {
      "post": {
        "tags": ["Analyze"],
        "summary": "Score a document and each of its paragraphs",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TextInput"}}}},
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AnalysisResult"}}}},
          "503": {"description": "Model not loaded", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/health": {
      "get": {"tags": ["Meta"], "summary": "Liveness with model state", "responses": {"200": {"description": "OK"}}}
    },
    "/meta/ready": {
      "get": {"tags": ["Meta"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Not ready"}}}
    },
    "/meta/version": {
      "get": {"tags": ["Meta"], "summary": "Build info", "responses": {"200": {"description": "OK"}}}
    },
    "/meta/service": {
      "get": {"tags": ["Meta"], "summary": "Service uptime", "responses": {"200": {"description": "OK"}}}
    },
    "/meta/model": {
      "get": {"tags": ["Meta"], "summary": "Scoring backend state", "responses": {"200": {"description": "OK"}}}
    }
  },
  "components": {
    "schemas": {
      "TextInput": {
        "type": "object",
        "required": ["text"],
        "properties": {"text": {"type": "string", "example": "Hello world"}}
      },
      "PredictResult": {
        "type": "object",
        "properties": {
          "text": {"type": "string"},
          "ai_probability": {"type": "number", "example": 0.1234},
          "prediction": {"type": "string", "enum": ["AI-generated", "human-authored"]},
          "confidence": {"type": "string", "enum": ["high", "medium", "low"]},
          "char_count": {"type": "integer"}
        }
      },
      "AnalysisResult": {
        "type": "object",
        "properties": {
          "overall_analysis": {
            "type": "object",
            "properties": {
              "full_text_probability": {"type": "number"},
              "prediction": {"type": "string"},
              "confidence": {"type": "string"}
            }
          },
          "paragraph_analysis": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {"text": {"type": "string"}, "ai_probability": {"type": "number"}}
            }
          },
          "paragraph_average": {"type": "number"}
        }
      }
    }
  }
}`

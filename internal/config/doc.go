// Package config provides configuration parsing for Folio sites.
//
// The configuration is stored in folio.json at the site root. Every field is
// optional; missing values fall back to defaults.
//
// # Configuration File Structure
//
//	{
//	  "name": "portfolio",
//	  "router": {
//	    "initialPath": "/",
//	    "fallbackPath": "/"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "folio"
//	  },
//	  "tracing": {
//	    "tracerName": "folio",
//	    "includeQuery": false
//	  },
//	  "nav": [
//	    {"path": "/", "label": "Home"},
//	    {"path": "/research", "label": "Research"}
//	  ],
//	  "breadcrumbs": {
//	    "/research": "Research Projects"
//	  },
//	  "session": {
//	    "admin": false
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := cfg.Logger(os.Stderr)
package config

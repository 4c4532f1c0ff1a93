// Package config provides configuration parsing for the carbon CLI.
//
// The configuration is stored in carbon.yaml, looked up from the working
// directory upwards. Every field is optional.
//
// # Configuration File Structure
//
//	render:
//	  maxBatchOps: 300
//	  debug: false
//	output:
//	  format: text
//	  color: true
//
// # Usage
//
//	cfg, err := config.Discover(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	a := adapter.New(view, cfg.AdapterOptions()...)
package config

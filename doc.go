// Package sme provides a Go implementation of the Sharemind Executable
// container format.
//
// A Sharemind executable bundles one or more linking units. Each unit holds
// up to seven typed sections: code, read-only data, read-write data, a
// zero-fill size, system call bindings, protection domain bindings and debug
// information. This module converts between that on-disk layout and an
// in-memory object model, validating both directions.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	sme/                 Root package with the opaque CodeBlock record
//	├── header/          Fixed-size file, format, unit and section headers
//	├── executable/      Object model, serializer and deserializer
//	└── errors/          Structured error types for diagnostics
//
// # Quick Start
//
// Build an executable and write it out:
//
//	exe := &executable.Executable{
//	    LinkingUnits: []executable.LinkingUnit{{
//	        Text: &executable.TextSection{
//	            Instructions: []sme.CodeBlock{sme.CodeBlockFromUint64(0x2a)},
//	        },
//	        Bind: &executable.BindingsSection{Names: []string{"Process_logMicroseconds"}},
//	    }},
//	}
//	if _, err := exe.WriteTo(f); err != nil {
//	    log.Fatal(err)
//	}
//
// Read it back:
//
//	exe, err := executable.Decode(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Wire Format
//
// All integers are little-endian and every record is a multiple of eight
// bytes long:
//
//	common header   magic[32] "Sharemind Executable", byte order marker u64,
//	                version u16, zero padding[6]                      48 bytes
//	format 0 header units-1 u8, active unit u8, zero padding[6]          8 bytes
//	unit header     magic[32] "Linking Unit", sections-1 u8, padding[7] 40 bytes
//	section header  magic[32] kind, length u32, zero padding[4]         40 bytes
//
// Section payloads follow their header and are zero-padded to the next
// multiple of eight bytes. TEXT payloads are already aligned and BSS
// sections carry no payload at all.
//
// # Error Handling
//
// All packages return structured errors from the errors package:
//
//	var e *errors.Error
//	if stderrors.As(err, &e) {
//	    fmt.Printf("phase=%s kind=%s unit=%d\n", e.Phase, e.Kind, e.Unit)
//	}
package sme

package foreign

import (
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/funvibe/declgen/internal/symbols"
	"github.com/funvibe/declgen/internal/typesystem"
)

func externalSym(name string, params ...typesystem.Type) symbols.Symbol {
	return symbols.Symbol{
		Name:     name,
		Kind:     symbols.FunctionSymbol,
		FuncKind: symbols.FuncExternal,
		Type:     typesystem.TFunc{Params: params, Return: typesystem.Int},
	}
}

func TestVerifyWithoutLoadedSymbols(t *testing.T) {
	v := NewVerifier()
	got := v.Verify([]symbols.Symbol{externalSym("fopen", typesystem.String)})
	if got != 0 {
		t.Errorf("verification without sources reported %d mismatches", got)
	}
}

func TestVerifyMatchesCaseInsensitively(t *testing.T) {
	v := NewVerifier()
	v.add(Signature{Name: "Fopen", Source: "example.com/files", Params: 2})

	syms := []symbols.Symbol{
		externalSym("fopen", typesystem.String, typesystem.String),
	}
	if got := v.Verify(syms); got != 0 {
		t.Errorf("matching registration reported %d mismatches", got)
	}
}

func TestVerifyReportsMismatches(t *testing.T) {
	v := NewVerifier()
	v.add(Signature{Name: "Fopen", Source: "example.com/files", Params: 2})

	syms := []symbols.Symbol{
		externalSym("fopen", typesystem.String),  // arity mismatch
		externalSym("fclose", typesystem.String), // unknown symbol
		{Name: "Player", Kind: symbols.ProductSymbol},
		{Name: "util", Kind: symbols.FunctionSymbol, FuncKind: symbols.FuncSignature},
	}
	if got := v.Verify(syms); got != 2 {
		t.Errorf("got %d mismatches, want 2", got)
	}
}

func TestLoadProtosets(t *testing.T) {
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("files.proto"),
		Package: proto.String("files"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("OpenRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField("name", 1),
					strField("mode", 2),
				},
			},
			{Name: proto.String("OpenReply")},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("Files"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:       proto.String("Fopen"),
						InputType:  proto.String(".files.OpenRequest"),
						OutputType: proto.String(".files.OpenReply"),
					},
				},
			},
		},
	}
	data, err := proto.Marshal(&descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{fdp},
	})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "files.protoset")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	v := NewVerifier()
	if err := v.LoadProtosets([]string{path}); err != nil {
		t.Fatal(err)
	}
	if v.Known() != 1 {
		t.Fatalf("known symbols = %d", v.Known())
	}

	ok := externalSym("fopen", typesystem.String, typesystem.String)
	if got := v.Verify([]symbols.Symbol{ok}); got != 0 {
		t.Errorf("matching method reported %d mismatches", got)
	}
	bad := externalSym("fopen", typesystem.String)
	if got := v.Verify([]symbols.Symbol{bad}); got != 1 {
		t.Errorf("arity mismatch reported %d mismatches", got)
	}
}

func TestLoadProtosetsMissingFile(t *testing.T) {
	v := NewVerifier()
	if err := v.LoadProtosets([]string{"/does/not/exist.protoset"}); err == nil {
		t.Error("expected an error for a missing protoset")
	}
}

func strField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(number),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		JsonName: proto.String(name),
	}
}

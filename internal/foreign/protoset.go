package foreign

import (
	"fmt"
	"os"

	"github.com/jhump/protoreflect/desc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// LoadProtosets reads compiled FileDescriptorSet files and records every
// service method as a foreign symbol. The method's parameter count is
// the field count of its request message, matching how a registration
// spells out the request fields as separate arguments.
func (v *Verifier) LoadProtosets(paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading protoset %s: %w", path, err)
		}

		var set descriptorpb.FileDescriptorSet
		if err := proto.Unmarshal(data, &set); err != nil {
			return fmt.Errorf("parsing protoset %s: %w", path, err)
		}

		fds, err := desc.CreateFileDescriptorsFromSet(&set)
		if err != nil {
			return fmt.Errorf("resolving protoset %s: %w", path, err)
		}

		for _, fd := range fds {
			for _, svc := range fd.GetServices() {
				for _, m := range svc.GetMethods() {
					v.add(Signature{
						Name:   m.GetName(),
						Source: svc.GetFullyQualifiedName(),
						Params: len(m.GetInputType().GetFields()),
					})
				}
			}
		}
	}
	return nil
}

package stackl_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestStackl(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Stackl Suite")
}

package events

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("buffer", func() {
	It("pops messages in insertion order", func() {
		b := newBuffer()

		Expect(b.PushBack(&message{Kind: EstimationMessageKind, Data: []byte("msg1")})).To(Equal(0))
		Expect(b.PushBack(&message{Kind: WaitlistMessageKind, Data: []byte("msg2")})).To(Equal(1))
		Expect(b.PushBack(&message{Kind: EstimationMessageKind, Data: []byte("msg3")})).To(Equal(2))
		Expect(b.Size()).To(Equal(3))

		Expect(b.Pop().Data).To(Equal([]byte("msg1")))
		Expect(b.Pop().Data).To(Equal([]byte("msg2")))
		Expect(b.Size()).To(Equal(1))
		Expect(b.Pop().Data).To(Equal([]byte("msg3")))

		Expect(b.Pop()).To(BeNil())
		Expect(b.Size()).To(Equal(0))
		Expect(b.head).To(BeNil())
		Expect(b.tail).To(BeNil())
	})

	It("is reusable after being emptied", func() {
		b := newBuffer()
		b.PushBack(&message{Data: []byte("a")})
		Expect(b.Pop()).NotTo(BeNil())

		Expect(b.PushBack(&message{Data: []byte("b")})).To(Equal(0))
		Expect(b.Pop().Data).To(Equal([]byte("b")))
	})
})

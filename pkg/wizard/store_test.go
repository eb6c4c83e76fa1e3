package wizard

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/util/sets"
)

var _ = Describe("Store", func() {
	var store *Store

	BeforeEach(func() {
		store = NewStore(InitialState())
	})

	AfterEach(func() {
		store.Close()
	})

	It("applies dispatched actions", func() {
		Expect(store.Dispatch(context.TODO(), Action{Type: ActionCapacity, Payload: "2Ti"})).To(Succeed())
		Expect(store.Snapshot().CapacityAndNodes.Capacity).To(Equal("2Ti"))
		Expect(store.Version()).To(Equal(uint64(1)))
	})

	It("keeps the state on a rejected action", func() {
		Expect(store.Dispatch(context.TODO(), Action{Type: ActionPVCount, Payload: "x"})).NotTo(Succeed())
		Expect(store.Snapshot()).To(Equal(InitialState()))
		Expect(store.Version()).To(BeZero())
	})

	It("returns snapshots that do not alias the store", func() {
		Expect(store.Dispatch(context.TODO(), SetChartNodes(sets.NewString("n1")))).To(Succeed())
		snapshot := store.Snapshot()
		snapshot.CreateLocalVolumeSet.ChartNodes.Insert("n2")
		Expect(store.Snapshot().CreateLocalVolumeSet.ChartNodes.List()).To(Equal([]string{"n1"}))
	})

	It("does not count an unchanged chart nodes set", func() {
		Expect(store.Dispatch(context.TODO(), SetChartNodes(sets.NewString("n1")))).To(Succeed())
		Expect(store.Dispatch(context.TODO(), SetChartNodes(sets.NewString("n1")))).To(MatchError(ErrUnchanged))
		Expect(store.Version()).To(Equal(uint64(1)))
	})

	It("serializes concurrent dispatches", func() {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(count int) {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(store.Dispatch(context.TODO(), Action{Type: ActionPVCount, Payload: count})).To(Succeed())
			}(i)
		}
		wg.Wait()
		Expect(store.Version()).To(Equal(uint64(50)))
	})

	It("honors a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.TODO())
		cancel()
		Expect(store.Dispatch(ctx, Action{Type: ActionEnableTaint, Payload: true})).To(MatchError(context.Canceled))
	})

	It("rejects dispatches after close", func() {
		store.Close()
		ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
		defer cancel()
		Expect(store.Dispatch(ctx, Action{Type: ActionEnableTaint, Payload: true})).To(MatchError(ErrStoreClosed))
	})
})

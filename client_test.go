package golednet_test

import (
	"errors"
	"time"

	. "github.com/pdf/golednet"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/format"

	"github.com/pdf/golednet/common"
	"github.com/pdf/golednet/mocks"
	"github.com/stretchr/testify/mock"
)

func init() {
	format.UseStringerRepresentation = false
}

var _ = Describe("Golednet", func() {
	var (
		client             *Client
		clientSubscription *common.Subscription
		timeout            = 200 * time.Millisecond

		mockProtocol *mocks.Protocol
		mockDevice   *mocks.Device
		mockLight    *mocks.Light

		deviceID        = `192.168.1.10:5577`
		deviceUnknownID = `192.168.1.99:5577`
		lightID         = `192.168.1.20:5577`
	)

	It("should assign itself to the protocol on NewClient", func() {
		mockProtocol = new(mocks.Protocol)
		mockProtocol.On(`SetClient`, mock.Anything).Return()

		client = NewClient(mockProtocol)
		Expect(client).To(BeAssignableToTypeOf(new(Client)))
		mockProtocol.AssertCalled(GinkgoT(), `SetClient`, client)
	})

	Describe("Client", func() {
		BeforeEach(func() {
			mockProtocol = new(mocks.Protocol)
			mockProtocol.On(`SetClient`, mock.Anything).Return()
			client = NewClient(mockProtocol)
			client.SetTimeout(timeout)
			clientSubscription, _ = client.NewSubscription()

			mockDevice = new(mocks.Device)
			mockLight = new(mocks.Light)
		})

		AfterEach(func() {
			mockProtocol.On(`Close`).Return(nil)
			_ = client.Close()
		})

		It("should update the timeout", func() {
			t := 5 * time.Second
			client.SetTimeout(t)
			Expect(client.GetTimeout()).To(Equal(&t))
		})

		It("should send discovery to the protocol", func() {
			mockProtocol.On(`Discover`).Return(nil).Once()
			Expect(client.Discover()).To(Succeed())
			mockProtocol.AssertExpectations(GinkgoT())
		})

		It("should pass targets to the protocol", func() {
			mockDevice.On(`ID`).Return(deviceID)
			mockProtocol.On(`Target`, `192.168.1.10`).Return(mockDevice, nil).Once()
			dev, err := client.AddTarget(`192.168.1.10`)
			Expect(err).NotTo(HaveOccurred())
			Expect(dev.ID()).To(Equal(deviceID))
			mockProtocol.AssertExpectations(GinkgoT())
		})

		Context("with devices registered", func() {
			BeforeEach(func() {
				mockDevice.On(`ID`).Return(deviceID)
				mockLight.On(`ID`).Return(lightID)
				Expect(client.AddDevice(mockDevice)).To(Succeed())
				Expect(client.AddDevice(mockLight)).To(Succeed())
			})

			It("should reject duplicate devices", func() {
				Expect(client.AddDevice(mockDevice)).To(Equal(common.ErrDuplicate))
			})

			It("should find a device by ID", func() {
				dev, err := client.GetDeviceByID(deviceID)
				Expect(err).NotTo(HaveOccurred())
				Expect(dev.ID()).To(Equal(deviceID))
			})

			It("should return an error for an unknown ID", func() {
				_, err := client.GetDeviceByID(deviceUnknownID)
				Expect(err).To(Equal(common.ErrNotFound))
			})

			It("should list devices in registration order", func() {
				devices, err := client.Devices()
				Expect(err).NotTo(HaveOccurred())
				Expect(devices).To(HaveLen(2))
				Expect(devices[0].ID()).To(Equal(deviceID))
				Expect(devices[1].ID()).To(Equal(lightID))
			})

			It("should remove a device by ID", func() {
				Expect(client.RemoveDeviceByID(deviceID)).To(Succeed())
				_, err := client.GetDeviceByID(deviceID)
				Expect(err).To(Equal(common.ErrNotFound))
				devices, err := client.Devices()
				Expect(err).NotTo(HaveOccurred())
				Expect(devices).To(HaveLen(1))
			})

			It("should return an error removing an unknown ID", func() {
				Expect(client.RemoveDeviceByID(deviceUnknownID)).To(Equal(common.ErrNotFound))
			})

			It("should execute a command against every device", func() {
				mockDevice.On(`SetPower`, true).Return(nil).Once()
				mockLight.On(`SetPower`, true).Return(nil).Once()

				results, err := client.Execute(SetPower{On: true})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Device.ID()).To(Equal(deviceID))
				Expect(results[1].Device.ID()).To(Equal(lightID))
				for _, res := range results {
					Expect(res.Err).NotTo(HaveOccurred())
				}
				mockDevice.AssertExpectations(GinkgoT())
				mockLight.AssertExpectations(GinkgoT())
			})

			It("should isolate failures to the failing device", func() {
				powerErr := errors.New(`connection refused`)
				mockDevice.On(`SetPower`, true).Return(powerErr).Once()
				mockLight.On(`SetPower`, true).Return(nil).Once()

				results, err := client.Execute(SetPower{On: true})
				Expect(err).NotTo(HaveOccurred())
				Expect(results[0].Err).To(Equal(powerErr))
				Expect(results[1].Err).NotTo(HaveOccurred())
				mockLight.AssertExpectations(GinkgoT())
			})
		})

		It("should fail executing with no devices", func() {
			_, err := client.Execute(SetPower{On: true})
			Expect(err).To(Equal(common.ErrNotFound))
		})

		It("should publish an event on new devices", func() {
			mockDevice.On(`ID`).Return(deviceID)
			Expect(client.AddDevice(mockDevice)).To(Succeed())

			event := new(common.EventNewDevice)
			Eventually(clientSubscription.Events()).Should(Receive(event))
			Expect(event.Device.ID()).To(Equal(deviceID))
		})
	})
})
